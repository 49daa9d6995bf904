package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/xiebiao/bookworm/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookworm/pkg/errors"
)

// catalogRepository 目录仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/catalog/repository.go定义的接口
// 2. 作者/分类等值过滤与关键词搜索下推到SQL,
//    定价/评分等派生语义由领域层计算,这里只负责取数
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository 创建目录仓储
func NewCatalogRepository(db *gorm.DB) catalog.Repository {
	return &catalogRepository{db: db}
}

// ListBooks 按过滤条件查询图书,携带作者、全部折扣与评论
func (r *catalogRepository) ListBooks(ctx context.Context, filter catalog.Filter) ([]*catalog.BookRecord, error) {
	query := r.db.WithContext(ctx).Model(&BookModel{}).
		Preload("Author").
		Preload("Discounts").
		Preload("Reviews")

	if filter.AuthorID != 0 {
		query = query.Where("books.author_id = ?", filter.AuthorID)
	}
	if filter.CategoryID != 0 {
		query = query.Where("books.category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		// 大小写不敏感的书名/作者名搜索
		keyword := "%" + strings.ToLower(filter.Search) + "%"
		query = query.
			Joins("JOIN authors ON authors.id = books.author_id").
			Where("LOWER(books.title) LIKE ? OR LOWER(authors.name) LIKE ?", keyword, keyword)
	}

	var models []BookModel
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	records := make([]*catalog.BookRecord, len(models))
	for i := range models {
		records[i] = toBookRecord(&models[i])
	}
	return records, nil
}

// FindBookByID 按ID查询单本图书
func (r *catalogRepository) FindBookByID(ctx context.Context, id uint) (*catalog.BookRecord, error) {
	var model BookModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Discounts").
		Preload("Reviews").
		First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookRecord(&model), nil
}

// ListAuthors 查询全部作者
func (r *catalogRepository) ListAuthors(ctx context.Context) ([]*catalog.Author, error) {
	var models []AuthorModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*catalog.Author, len(models))
	for i, m := range models {
		authors[i] = toAuthorEntity(&m)
	}
	return authors, nil
}

// FindAuthorByID 按ID查询作者
func (r *catalogRepository) FindAuthorByID(ctx context.Context, id uint) (*catalog.Author, error) {
	var model AuthorModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return toAuthorEntity(&model), nil
}

// ListCategories 查询全部分类
func (r *catalogRepository) ListCategories(ctx context.Context) ([]*catalog.Category, error) {
	var models []CategoryModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	categories := make([]*catalog.Category, len(models))
	for i, m := range models {
		categories[i] = toCategoryEntity(&m)
	}
	return categories, nil
}

// FindCategoryByID 按ID查询分类
func (r *catalogRepository) FindCategoryByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var model CategoryModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return toCategoryEntity(&model), nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookRecord GORM模型 → 领域取数结果
func toBookRecord(model *BookModel) *catalog.BookRecord {
	discounts := make([]catalog.Discount, len(model.Discounts))
	for i, d := range model.Discounts {
		discounts[i] = catalog.Discount{
			ID:        d.ID,
			BookID:    d.BookID,
			StartDate: d.StartDate,
			EndDate:   d.EndDate,
			Price:     d.Price,
		}
	}

	ratings := make([]string, len(model.Reviews))
	for i, rv := range model.Reviews {
		ratings[i] = rv.Rating
	}

	return &catalog.BookRecord{
		Book: catalog.Book{
			ID:         model.ID,
			CategoryID: model.CategoryID,
			AuthorID:   model.AuthorID,
			Title:      model.Title,
			Summary:    model.Summary,
			Price:      model.Price,
			CoverPhoto: model.CoverPhoto,
		},
		Author:    *toAuthorEntity(&model.Author),
		Discounts: discounts,
		Ratings:   ratings,
	}
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *catalog.Author {
	return &catalog.Author{
		ID:   model.ID,
		Name: model.Name,
		Bio:  model.Bio,
	}
}

// toCategoryEntity GORM模型 → 领域实体
func toCategoryEntity(model *CategoryModel) *catalog.Category {
	return &catalog.Category{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
	}
}
