package controllers

import (
	"net/http"
	"strconv"
	"strings"
)

// shortURL строит короткую ссылку: базовый адрес из конфига или Scheme://Host запроса.
func shortURL(baseURL string, r *http.Request, slug string) string {
	if baseURL != "" {
		return strings.TrimRight(baseURL, "/") + "/" + slug
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host + "/" + slug
}

// isTruthy значения вида true/1/t разбираются через strconv.ParseBool,
// любое другое непустое значение тоже считается истинным.
func isTruthy(raw string) bool {
	if raw == "" {
		return false
	}
	if v, err := strconv.ParseBool(raw); err == nil {
		return v
	}
	return true
}
