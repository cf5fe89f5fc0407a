// Package docs registra el documento OpenAPI de la API (generado con swag).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/auth": {
            "post": {
                "summary": "Iniciar sesión",
                "tags": [
                    "auth"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TokenResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LoginRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            },
            "get": {
                "summary": "Usuario autenticado",
                "tags": [
                    "auth"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/v1/stocks": {
            "get": {
                "summary": "Listar stocks",
                "tags": [
                    "stocks"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.StockListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "s",
                        "type": "string",
                        "description": "Expresión regular sobre código o nombre"
                    },
                    {
                        "in": "query",
                        "name": "l",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "status",
                        "type": "string"
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "post": {
                "summary": "Crear stock",
                "tags": [
                    "stocks"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.StockResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.StockRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/v1/stocks/categories": {
            "get": {
                "summary": "Stocks activos por categoría",
                "tags": [
                    "stats"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CategoryBreakdownDTO"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/v1/stocks/stats": {
            "get": {
                "summary": "Valorización del inventario activo",
                "tags": [
                    "stats"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ValuationSummaryDTO"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "s",
                        "type": "string",
                        "description": "Expresión regular sobre código o nombre"
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/v1/stocks/replenishment": {
            "get": {
                "summary": "Lista de reposición",
                "tags": [
                    "stocks"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.ReplenishmentSuggestionDTO"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/v1/stocks/{id}": {
            "get": {
                "summary": "Obtener stock por ID",
                "tags": [
                    "stocks"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.StockResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "put": {
                "summary": "Reemplazar stock",
                "tags": [
                    "stocks"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.StockResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.StockRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "patch": {
                "summary": "Ajustar conteo",
                "tags": [
                    "stocks"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.StockResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AdjustCountRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "delete": {
                "summary": "Desactivar stock",
                "tags": [
                    "stocks"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.StockResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/v1/stocks/{id}/label": {
            "get": {
                "summary": "Descargar etiqueta PDF",
                "tags": [
                    "stocks"
                ],
                "produces": [
                    "application/pdf"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/v1/movements": {
            "get": {
                "summary": "Últimos movimientos",
                "tags": [
                    "movements"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MovementListResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "l",
                        "type": "integer"
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/v1/movements/stats": {
            "get": {
                "summary": "Serie mensual acumulada de cambios de stock",
                "tags": [
                    "stats"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MonthlySeriesDTO"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/v1/movements/{id}": {
            "get": {
                "summary": "Movimientos de un stock",
                "tags": [
                    "movements"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MovementListResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/v1/{catalog}": {
            "get": {
                "summary": "Listar categorías o ubicaciones",
                "tags": [
                    "catalogs"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CatalogListResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "catalog",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "categories",
                            "locations"
                        ]
                    },
                    {
                        "in": "query",
                        "name": "status",
                        "type": "string"
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "post": {
                "summary": "Crear categoría o ubicación",
                "tags": [
                    "catalogs"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.CatalogResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "catalog",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "categories",
                            "locations"
                        ]
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateCatalogRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/v1/{catalog}/{id}": {
            "get": {
                "summary": "Obtener categoría o ubicación por ID",
                "tags": [
                    "catalogs"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CatalogResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "catalog",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "categories",
                            "locations"
                        ]
                    },
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "put": {
                "summary": "Actualizar categoría o ubicación",
                "tags": [
                    "catalogs"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CatalogResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "catalog",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "categories",
                            "locations"
                        ]
                    },
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateCatalogRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/v1/users": {
            "get": {
                "summary": "Listar usuarios (Admin)",
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserListResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "post": {
                "summary": "Registrar usuario",
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.TokenResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/api/v1/users/self": {
            "get": {
                "summary": "Usuario autenticado",
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/v1/users/{id}": {
            "get": {
                "summary": "Obtener usuario por ID",
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "put": {
                "summary": "Actualizar usuario",
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateUserRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/v1/users/{id}/password": {
            "put": {
                "summary": "Cambiar contraseña",
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ChangePasswordRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "domain.FieldError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.FieldError"
                    }
                }
            }
        },
        "dto.TokenResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                }
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ]
        },
        "dto.RegisterRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "name",
                "email",
                "password"
            ]
        },
        "dto.UpdateUserRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "Admin",
                        "User"
                    ]
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Active",
                        "Inactive"
                    ]
                }
            },
            "required": [
                "name",
                "email"
            ]
        },
        "dto.ChangePasswordRequest": {
            "type": "object",
            "properties": {
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "password"
            ]
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.UserListResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.UserResponse"
                    }
                }
            }
        },
        "dto.CreateCatalogRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.UpdateCatalogRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Active",
                        "Inactive"
                    ]
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.CatalogResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "created_by": {
                    "type": "string"
                },
                "updated_by": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.CatalogListResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CatalogResponse"
                    }
                }
            }
        },
        "dto.StockRequest": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "category_id": {
                    "type": "string"
                },
                "location_id": {
                    "type": "string"
                },
                "criticality_level": {
                    "type": "integer"
                },
                "stock_count": {
                    "type": "integer"
                },
                "buying_price": {
                    "type": "integer"
                },
                "selling_price": {
                    "type": "integer"
                }
            },
            "required": [
                "code",
                "name",
                "category_id",
                "location_id",
                "criticality_level",
                "stock_count",
                "buying_price",
                "selling_price"
            ]
        },
        "dto.AdjustCountRequest": {
            "type": "object",
            "properties": {
                "stockchange": {
                    "type": "integer"
                }
            },
            "required": [
                "stockchange"
            ]
        },
        "dto.StockResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "category_id": {
                    "type": "string"
                },
                "category_name": {
                    "type": "string"
                },
                "location_id": {
                    "type": "string"
                },
                "location_name": {
                    "type": "string"
                },
                "criticality_level": {
                    "type": "integer"
                },
                "criticality_status": {
                    "type": "string"
                },
                "stock_count": {
                    "type": "integer"
                },
                "buying_price": {
                    "type": "integer"
                },
                "selling_price": {
                    "type": "integer"
                },
                "qr_code": {
                    "type": "string"
                },
                "created_by": {
                    "type": "string"
                },
                "created_by_name": {
                    "type": "string"
                },
                "updated_by": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.StockListResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.StockResponse"
                    }
                }
            }
        },
        "dto.MovementStockResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "stock_count": {
                    "type": "integer"
                },
                "criticality_level": {
                    "type": "integer"
                },
                "criticality_status": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "dto.MovementResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "stock_change": {
                    "type": "integer"
                },
                "stock_count_after": {
                    "type": "integer"
                },
                "criticality_status_after": {
                    "type": "string"
                },
                "stock_id": {
                    "type": "string"
                },
                "stock": {
                    "$ref": "#/definitions/dto.MovementStockResponse"
                },
                "created_by": {
                    "type": "string"
                },
                "created_by_name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.MovementListResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.MovementResponse"
                    }
                }
            }
        },
        "dto.MonthlySeriesDTO": {
            "type": "object",
            "properties": {
                "labels": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "values": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "dto.ChartDatasetDTO": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "backgroundColor": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.CategoryBreakdownDTO": {
            "type": "object",
            "properties": {
                "labels": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "datasets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ChartDatasetDTO"
                    }
                }
            }
        },
        "dto.ValuationSummaryDTO": {
            "type": "object",
            "properties": {
                "stock_count": {
                    "type": "integer"
                },
                "buying_value": {
                    "type": "number"
                },
                "selling_value": {
                    "type": "number"
                },
                "profit": {
                    "type": "number"
                }
            }
        },
        "dto.ReplenishmentSuggestionDTO": {
            "type": "object",
            "properties": {
                "stock_id": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "category_name": {
                    "type": "string"
                },
                "location_name": {
                    "type": "string"
                },
                "criticality_status": {
                    "type": "string"
                },
                "criticality_level": {
                    "type": "integer"
                },
                "current_stock": {
                    "type": "integer"
                },
                "target_stock": {
                    "type": "integer"
                },
                "suggested_order_qty": {
                    "type": "integer"
                },
                "unit_cost": {
                    "type": "number"
                },
                "estimated_order_cost": {
                    "type": "number"
                },
                "priority": {
                    "type": "integer"
                }
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "schemes": {{ marshal .Schemes }},
    "host": "{{.Host}}"
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Stoqr API",
	Description:      "Inventario con libro de movimientos y códigos QR.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
