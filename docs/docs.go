// Package docs registers the Swagger 2.0 document served under /swagger.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/add-days": {
            "get": {
                "description": "Shifts the base date (default: today) forward by the given number of calendar days.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "DateCalc"
                ],
                "summary": "Add days to a date",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Base date, ISO 8601",
                        "name": "date",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Days to add, may be negative",
                        "name": "days",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.daysResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.ValidationResp"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResp"
                        }
                    }
                }
            }
        },
        "/api/add-weeks": {
            "get": {
                "description": "Shifts the base date (default: today) forward by weeks*7 calendar days.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "DateCalc"
                ],
                "summary": "Add weeks to a date",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Base date, ISO 8601",
                        "name": "date",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Weeks to add, may be negative",
                        "name": "weeks",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.weeksResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.ValidationResp"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResp"
                        }
                    }
                }
            }
        },
        "/api/subtract-days": {
            "get": {
                "description": "Shifts the base date (default: today) back by the given number of days. A negative value moves forward.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "DateCalc"
                ],
                "summary": "Subtract days from a date",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Base date, ISO 8601",
                        "name": "date",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Days to subtract",
                        "name": "days",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.daysResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.ValidationResp"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResp"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health Check",
                "responses": {
                    "200": {
                        "description": "API is healthy",
                        "schema": {
                            "$ref": "#/definitions/httpserver.healthResp"
                        }
                    }
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Liveness Check",
                "responses": {
                    "200": {
                        "description": "API is alive",
                        "schema": {
                            "$ref": "#/definitions/httpserver.healthResp"
                        }
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Readiness Check",
                "responses": {
                    "200": {
                        "description": "API is ready",
                        "schema": {
                            "$ref": "#/definitions/httpserver.healthResp"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "errors.FieldError": {
            "type": "object",
            "properties": {
                "location": {
                    "type": "string"
                },
                "msg": {
                    "type": "string"
                },
                "path": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "value": {
                    "type": "string"
                }
            }
        },
        "http.daysInput": {
            "type": "object",
            "properties": {
                "baseDate": {
                    "type": "string",
                    "example": "2024-01-31"
                },
                "days": {
                    "type": "integer",
                    "example": 1
                }
            }
        },
        "http.daysResp": {
            "type": "object",
            "properties": {
                "input": {
                    "$ref": "#/definitions/http.daysInput"
                },
                "result": {
                    "type": "string",
                    "example": "2024-02-01"
                }
            }
        },
        "http.weeksInput": {
            "type": "object",
            "properties": {
                "baseDate": {
                    "type": "string",
                    "example": "2024-01-01"
                },
                "weeks": {
                    "type": "integer",
                    "example": 2
                }
            }
        },
        "http.weeksResp": {
            "type": "object",
            "properties": {
                "input": {
                    "$ref": "#/definitions/http.weeksInput"
                },
                "result": {
                    "type": "string",
                    "example": "2024-01-15"
                }
            }
        },
        "httpserver.healthResp": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "service": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                }
            }
        },
        "response.ErrorResp": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "response.ValidationResp": {
            "type": "object",
            "properties": {
                "errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/errors.FieldError"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:3000",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Date Arithmetic API",
	Description:      "Add or subtract calendar days and weeks from ISO 8601 dates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
