package dto

import (
	"fmt"
	"time"

	"github.com/xiebiao/bookworm/internal/domain/catalog"
)

// ListBooksRequest HTTP目录浏览请求
// filterBy取值: discount_desc(默认) / popular_desc / final_price_asc / final_price_desc
type ListBooksRequest struct {
	FilterBy   string  `form:"filterBy" binding:"omitempty" example:"discount_desc"`
	AuthorID   uint    `form:"author_id" binding:"omitempty" example:"1"`
	CategoryID uint    `form:"category_id" binding:"omitempty" example:"2"`
	Star       float64 `form:"star" binding:"omitempty,min=0,max=5" example:"4"`
	Search     string  `form:"search" binding:"omitempty,max=100" example:"golang"`
	Limit      int     `form:"limit" binding:"omitempty,min=1" example:"20"`
	Offset     int     `form:"offset" binding:"omitempty,min=0" example:"0"`
}

// DiscountInfo 生效折扣
type DiscountInfo struct {
	DiscountPrice   int64  `json:"discount_price" example:"1500"`
	DiscountEndDate string `json:"discount_end_date,omitempty" example:"2026-09-30"`
}

// AuthorInfo 作者信息
type AuthorInfo struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"author_name" example:"刘慈欣"`
	Bio  string `json:"author_bio,omitempty"`
}

// BookResponse HTTP图书响应(列表与详情共用)
type BookResponse struct {
	ID             uint           `json:"id" example:"1"`
	CategoryID     uint           `json:"category_id" example:"2"`
	AuthorID       uint           `json:"author_id" example:"1"`
	Title          string         `json:"book_title" example:"三体"`
	Summary        string         `json:"book_summary,omitempty"`
	Price          int64          `json:"book_price" example:"2000"` // 定价(分)
	PriceYuan      string         `json:"book_price_yuan" example:"20.00"`
	CoverPhoto     string         `json:"book_cover_photo,omitempty"`
	Author         AuthorInfo     `json:"author"`
	Discounts      []DiscountInfo `json:"discounts"`
	FinalPrice     int64          `json:"final_price" example:"1500"` // 实际售价(分)
	FinalPriceYuan string         `json:"final_price_yuan" example:"15.00"`
	DiscountAmount int64          `json:"discount_amount" example:"500"`
	HasDiscount    bool           `json:"has_discount" example:"true"`
	AvgRating      float64        `json:"avg_rating" example:"4.5"`
	ReviewCount    int            `json:"review_count" example:"12"`
}

// ToBookResponse 领域查询结果 → HTTP响应
func ToBookResponse(item *catalog.BookSummary) BookResponse {
	discounts := make([]DiscountInfo, len(item.Discounts))
	for i, d := range item.Discounts {
		discounts[i] = DiscountInfo{
			DiscountPrice:   d.Price,
			DiscountEndDate: formatDate(d.EndDate),
		}
	}

	return BookResponse{
		ID:             item.Book.ID,
		CategoryID:     item.Book.CategoryID,
		AuthorID:       item.Book.AuthorID,
		Title:          item.Book.Title,
		Summary:        item.Book.Summary,
		Price:          item.Book.Price,
		PriceYuan:      FormatPriceYuan(item.Book.Price),
		CoverPhoto:     item.Book.CoverPhoto,
		Author: AuthorInfo{
			ID:   item.Author.ID,
			Name: item.Author.Name,
			Bio:  item.Author.Bio,
		},
		Discounts:      discounts,
		FinalPrice:     item.FinalPrice,
		FinalPriceYuan: FormatPriceYuan(item.FinalPrice),
		DiscountAmount: item.DiscountAmount,
		HasDiscount:    item.HasDiscount,
		AvgRating:      item.AvgRating,
		ReviewCount:    item.ReviewCount,
	}
}

// ToBookResponses 批量转换
func ToBookResponses(items []*catalog.BookSummary) []BookResponse {
	out := make([]BookResponse, len(items))
	for i, item := range items {
		out[i] = ToBookResponse(item)
	}
	return out
}

// CategoryResponse 分类响应
type CategoryResponse struct {
	ID          uint   `json:"id" example:"2"`
	Name        string `json:"category_name" example:"科幻"`
	Description string `json:"category_desc,omitempty"`
}

// FormatPriceYuan 格式化价格(分→元)
// 例如:5900分 → "59.00"
func FormatPriceYuan(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}

// formatDate 日期格式化,nil返回空串
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
