package main

import "webcabinet/internal/app"

// @title           WebCabinet API
// @version         1.0
// @description     Веб-кабинет: аутентификация, регистрация и панельная навигация.
// @BasePath        /
func main() {
	app.Run()
}
