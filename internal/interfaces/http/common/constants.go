package common

const (
	// MaxLogoUploadBytes limits logo uploads before data-URI conversion.
	MaxLogoUploadBytes = 1 << 20
	// MaxDescriptionRunes limits startup description length to keep payloads sane.
	MaxDescriptionRunes = 2000
	// MaxRequestBody limits JSON request bodies for startup endpoints.
	MaxRequestBody = 1 << 20
)
