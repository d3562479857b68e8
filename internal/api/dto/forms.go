package dto

// SignupForm is the /signup form body.
type SignupForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// LoginForm is the /login form body.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// PostForm is the /post form body.
type PostForm struct {
	Title string `form:"title"`
	Body  string `form:"body"`
}
