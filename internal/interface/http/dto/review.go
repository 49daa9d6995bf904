package dto

import (
	"github.com/xiebiao/bookworm/internal/domain/review"
)

// ListReviewsRequest HTTP评论查询请求
type ListReviewsRequest struct {
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=newest oldest" example:"newest"`
	RatingStar int    `form:"rating_star" binding:"omitempty,min=1,max=5" example:"5"`
	Limit      int    `form:"limit" binding:"omitempty,min=1" example:"20"`
	Offset     int    `form:"offset" binding:"omitempty,min=0" example:"0"`
}

// CreateReviewRequest HTTP创建评论请求
type CreateReviewRequest struct {
	BookID  uint   `json:"book_id" binding:"required" example:"1"`
	Title   string `json:"review_title" binding:"required,max=120" example:"值得一读"`
	Details string `json:"review_details" binding:"max=5000"`
	Rating  int    `json:"rating_star" binding:"required,min=1,max=5" example:"5"`
}

// ReviewResponse HTTP评论响应
type ReviewResponse struct {
	ID        uint   `json:"id" example:"1"`
	BookID    uint   `json:"book_id" example:"1"`
	UserID    *uint  `json:"user_id,omitempty"`
	Title     string `json:"review_title" example:"值得一读"`
	Details   string `json:"review_details,omitempty"`
	Rating    string `json:"rating_star" example:"5"`
	CreatedAt string `json:"created_at" example:"2026-08-28 10:30:00"`
}

// ReviewPageResponse HTTP评论列表响应(列表 + 全量统计)
type ReviewPageResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	TotalCount    int              `json:"total_count" example:"42"`
	AverageRating float64          `json:"average_rating" example:"4.2"`
	StarCounts    map[int]int      `json:"star_counts"`
}

// ToReviewResponse 领域实体 → HTTP响应
func ToReviewResponse(r *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		BookID:    r.BookID,
		UserID:    r.UserID,
		Title:     r.Title,
		Details:   r.Details,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ToReviewPageResponse 领域查询结果 → HTTP响应
func ToReviewPageResponse(page *review.Page) ReviewPageResponse {
	items := make([]ReviewResponse, len(page.Items))
	for i, r := range page.Items {
		items[i] = ToReviewResponse(r)
	}
	return ReviewPageResponse{
		Reviews:       items,
		TotalCount:    page.TotalCount,
		AverageRating: page.AverageRating,
		StarCounts:    page.StarCounts,
	}
}
