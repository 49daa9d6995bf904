package review

import (
	"time"
)

// Review 图书评论
// 历史原因rating列为字符串类型(早期数据里存在"好评"之类的脏数据),
// 新写入统一为"1"~"5",读取端按可解析规则聚合
type Review struct {
	ID        uint      `json:"id"`
	BookID    uint      `json:"book_id"`
	UserID    *uint     `json:"user_id,omitempty"` // 历史数据存在匿名评论
	Title     string    `json:"review_title"`
	Details   string    `json:"review_details"`
	Rating    string    `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// Page 评论查询结果:分页列表 + 全量统计
// 统计口径:AverageRating与StarCounts覆盖该图书的全部评论,不受过滤和分页影响
type Page struct {
	Items         []*Review   `json:"reviews"`
	TotalCount    int         `json:"total_count"`    // 过滤后、分页前的总数
	AverageRating float64     `json:"average_rating"` // 全量平均分,保留1位小数
	StarCounts    map[int]int `json:"star_counts"`    // 各星级评论数,零计数的星级不出现
}
