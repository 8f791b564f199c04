package main

import "blogify/internal/app"

// @title           Blogify API
// @version         1.0
// @description     REST backend блог-платформы: OTP-регистрация, JWT, роли, посты, комментарии, профили.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	app.Run()
}
