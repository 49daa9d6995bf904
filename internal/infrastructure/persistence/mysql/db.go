package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookworm/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 注意：AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&CategoryModel{},
		&AuthorModel{},
		&BookModel{},
		&DiscountModel{},
		&ReviewModel{},
		&OrderModel{},
		&OrderItemModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	FullName  string    `gorm:"size:100;not null;comment:姓名"`
	Email     string    `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string    `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Admin     bool      `gorm:"not null;default:false;comment:管理员标记（预留）"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// CategoryModel GORM分类模型
type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null;comment:分类名"`
	Description string `gorm:"size:500;comment:分类描述"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// AuthorModel GORM作者模型
type AuthorModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"index;size:100;not null;comment:作者名"`
	Bio  string `gorm:"type:text;comment:作者简介"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. 目录查询需要一次性取出折扣与评论,通过关联Preload加载
type BookModel struct {
	ID         uint            `gorm:"primaryKey"`
	CategoryID uint            `gorm:"index;not null;comment:分类ID"`
	AuthorID   uint            `gorm:"index;not null;comment:作者ID"`
	Title      string          `gorm:"index;size:200;not null;comment:书名"`
	Summary    string          `gorm:"type:text;comment:内容简介"`
	Price      int64           `gorm:"not null;comment:定价(分)"`
	CoverPhoto string          `gorm:"size:500;comment:封面图片URL"`
	Author     AuthorModel     `gorm:"foreignKey:AuthorID"`
	Discounts  []DiscountModel `gorm:"foreignKey:BookID"`
	Reviews    []ReviewModel   `gorm:"foreignKey:BookID"`
	CreatedAt  time.Time       `gorm:"comment:创建时间"`
	UpdatedAt  time.Time       `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// DiscountModel GORM折扣模型
// end_date为NULL表示长期有效;折扣是否生效由领域层按查询时刻判定
type DiscountModel struct {
	ID        uint       `gorm:"primaryKey"`
	BookID    uint       `gorm:"index;not null;comment:图书ID"`
	StartDate time.Time  `gorm:"comment:开始日期"`
	EndDate   *time.Time `gorm:"comment:结束日期(NULL为长期有效)"`
	Price     int64      `gorm:"not null;comment:折扣价(分)"`
}

// TableName 指定表名
func (DiscountModel) TableName() string {
	return "discounts"
}

// ReviewModel GORM评论模型
// 历史原因rating列为varchar(存量数据有无法解析的值),读取端做容错聚合
type ReviewModel struct {
	ID        uint      `gorm:"primaryKey"`
	BookID    uint      `gorm:"index;not null;comment:图书ID"`
	UserID    *uint     `gorm:"index;comment:用户ID(历史数据可为空)"`
	Title     string    `gorm:"size:200;not null;comment:评论标题"`
	Details   string    `gorm:"type:text;comment:评论内容"`
	Rating    string    `gorm:"size:20;comment:评分(字符串,历史遗留)"`
	CreatedAt time.Time `gorm:"index;comment:创建时间"`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}

// OrderModel GORM订单模型
type OrderModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null;comment:买家用户ID"`
	OrderDate time.Time `gorm:"index;not null;comment:下单时间"`
	Amount    int64     `gorm:"not null;default:0;comment:订单总金额(分)"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel GORM订单明细模型
// Price记录下单时的实际售价快照
type OrderItemModel struct {
	ID       uint  `gorm:"primaryKey"`
	OrderID  uint  `gorm:"index;not null;comment:订单ID"`
	BookID   uint  `gorm:"index;not null;comment:图书ID"`
	Quantity int   `gorm:"not null;comment:购买数量"`
	Price    int64 `gorm:"not null;comment:下单时单价(分)"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}
