package main

// General API documentation for swaggo. Regenerate internal/apidocs with
// `swag init -g cmd/mentord/docs.go -o internal/apidocs`.
//
// @title           AI Debugging Assistant
// @version         1.0
// @description     Thin proxy that forwards debugging questions to a local Ollama server under a fixed mentor persona.
//
// @contact.name   mentord maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
