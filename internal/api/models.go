package api

// Content types accepted by the generate endpoints.
const (
	ContentTypeText = "text"
	ContentTypePDF  = "pdf"
)

// GenerateForm is the body of /generate_flashcard and /generate_quiz.
// Content is checked after any uploaded PDF has been read.
type GenerateForm struct {
	ContentType string `form:"content_type" validate:"oneof=text pdf"`
	Request     string `form:"request"`
	Content     string `form:"content"`
	Count       int    `form:"count"        validate:"gte=1,lte=127"`
}

// CreateForm is the body of /create_flash and /create_quiz.
type CreateForm struct {
	UserID string `form:"user_id" validate:"required"`
	Topic  string `form:"topic"   validate:"required"`
	Count  int    `form:"count"   validate:"gte=1,lte=127"`
}

// CredentialsForm is the body of /add_student, /add_faculty and /login.
type CredentialsForm struct {
	Username string `form:"username" validate:"required,max=64"`
	Password string `form:"password" validate:"required,max=72"`
}
