package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/shortlinks/internal/services"
)

type linkParams struct {
	Slug *string `json:"slug"`
	URL  *string `json:"url"`
}

// empty пустой объект link приравнивается к отсутствующему параметру.
func (p *linkParams) empty() bool {
	return p == nil || (p.Slug == nil && p.URL == nil)
}

type createLinkRequest struct {
	Link *linkParams `json:"link" binding:"required"`
}

type linkData struct {
	Slug      string    `json:"slug"`
	URL       string    `json:"url"`
	ShortURL  string    `json:"short_url"`
	CreatedAt time.Time `json:"created_at"`
}

type linkMeta struct {
	TotalVisits int64              `json:"total_visits"`
	VisitsByDay []map[string]int64 `json:"visits_by_day"`
}

type linkResponse struct {
	Data linkData  `json:"data"`
	Meta *linkMeta `json:"meta,omitempty"`
}

// LinksController JSON API для создания и просмотра ссылок.
type LinksController struct {
	links   LinkShortener
	baseURL string
}

func NewLinksController(links LinkShortener, baseURL string) *LinksController {
	return &LinksController{
		links:   links,
		baseURL: baseURL,
	}
}

// Create обрабатывает POST /api/v1/links.
//
// Ответы:
//   - 201 {data: {...}} ссылка создана
//   - 400 {errors: [...]} нет параметра link, ошибки валидации или слаг занят
//   - 409 {errors: [...]} для url уже есть короткая ссылка
//   - 500/503 прочие ошибки
func (l *LinksController) Create(ctx *gin.Context) {
	var req createLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Link.empty() {
		if err != nil {
			_ = ctx.Error(fmt.Errorf("bind link params: %w", err))
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": []string{MsgLinkParamMissing}})
		return
	}

	var rawURL string
	if req.Link.URL != nil {
		rawURL = *req.Link.URL
	}
	view, err := l.links.Create(ctx.Request.Context(), req.Link.Slug, rawURL)
	if err != nil {
		l.renderCreateError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, linkResponse{Data: l.toData(ctx.Request, view)})
}

func (l *LinksController) renderCreateError(ctx *gin.Context, err error) {
	var (
		validationErr *services.ValidationError
		duplicateErr  *services.DuplicateURLError
	)
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": validationErr.Messages})
	case errors.Is(err, services.ErrSlugTaken):
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": []string{services.MsgSlugTaken}})
	case errors.As(err, &duplicateErr):
		existing := shortURL(l.baseURL, ctx.Request, duplicateErr.ExistingSlug)
		ctx.JSON(http.StatusConflict, gin.H{"errors": []string{services.MsgURLDuplicate + existing}})
	default:
		renderInternal(ctx, err)
	}
}

// Show обрабатывает GET /api/v1/links/:slug[?stats=true].
func (l *LinksController) Show(ctx *gin.Context) {
	includeStats := isTruthy(ctx.Query("stats"))

	view, err := l.links.Get(ctx.Request.Context(), ctx.Param("slug"), includeStats)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"errors": MsgNoRecordForSlug})
			return
		}
		renderInternal(ctx, err)
		return
	}

	resp := linkResponse{Data: l.toData(ctx.Request, view)}
	if view.Stats != nil {
		meta := &linkMeta{
			TotalVisits: view.Stats.TotalVisits,
			VisitsByDay: make([]map[string]int64, 0, len(view.Stats.VisitsByDay)),
		}
		for _, bucket := range view.Stats.VisitsByDay {
			meta.VisitsByDay = append(meta.VisitsByDay, map[string]int64{
				bucket.Day.UTC().Format(time.RFC3339): bucket.Count,
			})
		}
		resp.Meta = meta
	}
	ctx.JSON(http.StatusOK, resp)
}

func (l *LinksController) toData(r *http.Request, view *services.LinkView) linkData {
	return linkData{
		Slug:      view.Slug,
		URL:       view.URL,
		ShortURL:  shortURL(l.baseURL, r, view.Slug),
		CreatedAt: view.CreatedAt.UTC(),
	}
}

// renderInternal отвечает 503 при истекшем таймауте запроса и 500 в остальных случаях.
func renderInternal(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	status := http.StatusInternalServerError
	if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, gin.H{"errors": []string{MsgInternal}})
}
