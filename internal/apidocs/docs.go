// Package apidocs holds the swagger document for the mentord HTTP API.
// Regenerate with `swag init -g cmd/mentord/docs.go -o internal/apidocs`.
package apidocs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "mentord maintainers"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/chat": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chat"
                ],
                "summary": "Ask the debugging mentor",
                "parameters": [
                    {
                        "description": "Message and optional model",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.ChatRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ChatResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "415": {
                        "description": "Unsupported Media Type",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/models": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chat"
                ],
                "summary": "Allowed models",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ModelsResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Proxy and upstream health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "types.ChatRequest": {
            "type": "object",
            "properties": {
                "message": {
                    "description": "Required user message. Surrounding whitespace is ignored.",
                    "type": "string",
                    "example": "Why does my Go program panic with \"assignment to entry in nil map\"?"
                },
                "model": {
                    "description": "Optional model identifier. If empty, the server default is used.",
                    "type": "string",
                    "example": "qwen2.5-coder:1.5b"
                }
            }
        },
        "types.ChatResponse": {
            "type": "object",
            "properties": {
                "model_used": {
                    "description": "Model that served the request.",
                    "type": "string",
                    "example": "qwen2.5-coder:1.5b"
                },
                "reply": {
                    "description": "Generated reply text, trimmed.",
                    "type": "string",
                    "example": "You are writing to a map that was never initialized. Use make(map[string]int) first."
                }
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "description": "HTTP status code.",
                    "type": "integer",
                    "example": 400
                },
                "error": {
                    "description": "Error message.",
                    "type": "string",
                    "example": "Empty message."
                }
            }
        },
        "types.HealthResponse": {
            "type": "object",
            "properties": {
                "models_available": {
                    "description": "Models this proxy forwards requests for.",
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "ollama_reachable": {
                    "description": "Whether the upstream inference server answered its root path.",
                    "type": "boolean",
                    "example": true
                },
                "status": {
                    "description": "Always \"ok\" when the proxy itself is serving.",
                    "type": "string",
                    "example": "ok"
                }
            }
        },
        "types.ModelsResponse": {
            "type": "object",
            "properties": {
                "default": {
                    "description": "Model used when a chat request omits one.",
                    "type": "string",
                    "example": "qwen2.5-coder:1.5b"
                },
                "models": {
                    "description": "Allow-listed model identifiers.",
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "AI Debugging Assistant",
	Description:      "Thin proxy that forwards debugging questions to a local Ollama server under a fixed mentor persona.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
