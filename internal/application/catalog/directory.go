package catalog

import (
	"context"

	"github.com/xiebiao/bookworm/internal/domain/catalog"
)

// DirectoryUseCase 作者/分类档案查询用例
type DirectoryUseCase struct {
	catalogService catalog.Service
}

// NewDirectoryUseCase 创建档案查询用例
func NewDirectoryUseCase(catalogService catalog.Service) *DirectoryUseCase {
	return &DirectoryUseCase{catalogService: catalogService}
}

// ListAuthors 查询全部作者
func (uc *DirectoryUseCase) ListAuthors(ctx context.Context) ([]*catalog.Author, error) {
	return uc.catalogService.ListAuthors(ctx)
}

// GetAuthor 按ID查询作者
func (uc *DirectoryUseCase) GetAuthor(ctx context.Context, id uint) (*catalog.Author, error) {
	return uc.catalogService.GetAuthor(ctx, id)
}

// ListCategories 查询全部分类
func (uc *DirectoryUseCase) ListCategories(ctx context.Context) ([]*catalog.Category, error) {
	return uc.catalogService.ListCategories(ctx)
}

// GetCategory 按ID查询分类
func (uc *DirectoryUseCase) GetCategory(ctx context.Context, id uint) (*catalog.Category, error) {
	return uc.catalogService.GetCategory(ctx, id)
}

// BooksByCategory 按分类查询图书,分类引用不存在时返回空集
func (uc *DirectoryUseCase) BooksByCategory(ctx context.Context, categoryID uint) ([]*catalog.BookSummary, error) {
	return uc.catalogService.ByCategory(ctx, categoryID)
}

// BooksByAuthor 按作者查询图书,作者引用不存在时返回空集
func (uc *DirectoryUseCase) BooksByAuthor(ctx context.Context, authorID uint) ([]*catalog.BookSummary, error) {
	return uc.catalogService.ByAuthor(ctx, authorID)
}
