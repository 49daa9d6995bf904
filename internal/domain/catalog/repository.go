package catalog

import (
	"context"
)

// Repository 目录仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 仓储只负责取数:作者/分类等值过滤与关键词LIKE下推到SQL,
//    定价/评分/排序/分页等派生语义全部在Service中计算(单一事实来源)
type Repository interface {
	// ListBooks 按过滤条件查询图书,携带作者、全部折扣与评论评分
	// 过滤条件引用不存在的作者/分类时返回空集,不报错
	ListBooks(ctx context.Context, filter Filter) ([]*BookRecord, error)

	// FindBookByID 按ID查询单本图书,不存在返回ErrBookNotFound
	FindBookByID(ctx context.Context, id uint) (*BookRecord, error)

	// ListAuthors 查询全部作者
	ListAuthors(ctx context.Context) ([]*Author, error)

	// FindAuthorByID 按ID查询作者,不存在返回ErrAuthorNotFound
	FindAuthorByID(ctx context.Context, id uint) (*Author, error)

	// ListCategories 查询全部分类(按名称排序)
	ListCategories(ctx context.Context) ([]*Category, error)

	// FindCategoryByID 按ID查询分类,不存在返回ErrCategoryNotFound
	FindCategoryByID(ctx context.Context, id uint) (*Category, error)
}
