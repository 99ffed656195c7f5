package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/shortlinks/internal/services"
)

// RedirectsController перенаправляет короткие ссылки на исходные url.
type RedirectsController struct {
	links LinkShortener
}

func NewRedirectsController(links LinkShortener) *RedirectsController {
	return &RedirectsController{links: links}
}

// Redirect обрабатывает GET /:slug. Существующий слаг дает 301 с записью визита,
// неизвестный отдает статическую страницу 404.
func (r *RedirectsController) Redirect(ctx *gin.Context) {
	target, err := r.links.ResolveAndRecordVisit(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			NotFoundPage(ctx)
			return
		}
		_ = ctx.Error(err)
		ctx.String(http.StatusInternalServerError, MsgInternal)
		return
	}
	ctx.Redirect(http.StatusMovedPermanently, target)
}

// NotFoundPage отдает встроенную страницу 404.
func NotFoundPage(ctx *gin.Context) {
	ctx.Data(http.StatusNotFound, "text/html; charset=utf-8", notFoundPage)
}
