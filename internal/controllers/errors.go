package controllers

// Тексты ошибок, которые видит клиент.
const (
	MsgLinkParamMissing = "param is missing or the value is empty: link"
	MsgNoRecordForSlug  = "No record found that matches the given slug"
	MsgInternal         = "Internal server error"
)
