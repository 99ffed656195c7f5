package controllers

import (
	_ "embed"
)

//go:embed static/404.html
var notFoundPage []byte
