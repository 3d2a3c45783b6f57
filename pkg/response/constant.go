package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	BadRequestErrorCode     = 1
	UnauthorizedErrorCode   = 401
	InternalServerErrorCode = 500
)
