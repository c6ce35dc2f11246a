package response

// HTTP 状态码即业务状态码，回传调用方（广告网络）按 HTTP 状态判定结果
const (
	CodeOK              = 200
	CodeCreated         = 201
	CodeBadRequest      = 400
	CodeNotFound        = 404
	CodeConflict        = 409
	CodeTooManyRequests = 429
	CodeInternal        = 500
)
