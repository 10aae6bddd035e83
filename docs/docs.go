// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package docs holds the OpenAPI document served at /swagger/doc.json.
// Regenerate after changing handler annotations:
//
//	swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"license": {
			"name": "AGPL-3.0-or-later",
			"url": "https://www.gnu.org/licenses/agpl-3.0.html"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/health/live": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Health"
				],
				"summary": "Liveness check",
				"responses": {
					"200": {
						"description": "Process is alive",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				}
			}
		},
		"/health/ready": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Health"
				],
				"summary": "Readiness check",
				"responses": {
					"200": {
						"description": "A snapshot is installed",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					},
					"503": {
						"description": "No snapshot yet",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				}
			}
		},
		"/movies/top": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Movies"
				],
				"summary": "Top-ranked movies",
				"parameters": [
					{
						"type": "integer",
						"description": "Number of movies",
						"name": "n",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/models.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.MovieList"
										}
									}
								}
							]
						}
					},
					"503": {
						"description": "No snapshot yet",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				}
			}
		},
		"/movies/filter": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Movies"
				],
				"summary": "Filter movies by query string",
				"parameters": [
					{
						"type": "string",
						"description": "Genre, case-insensitive",
						"name": "genre",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Original language code",
						"name": "language",
						"in": "query"
					},
					{
						"type": "number",
						"description": "Minimum vote average",
						"name": "min_rating",
						"in": "query"
					},
					{
						"type": "number",
						"description": "Minimum overview sentiment",
						"name": "min_sentiment",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Minimum runtime in minutes",
						"name": "min_runtime",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Maximum runtime in minutes",
						"name": "max_runtime",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Release year",
						"name": "release_year",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Result limit",
						"name": "top_n",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/models.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.MovieList"
										}
									}
								}
							]
						}
					},
					"503": {
						"description": "No snapshot yet",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Movies"
				],
				"summary": "Filter movies by JSON preferences",
				"parameters": [
					{
						"description": "Preferences",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.FilterRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/models.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.MovieList"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid preferences",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					},
					"503": {
						"description": "No snapshot yet",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				}
			}
		},
		"/movies/mood": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Movies"
				],
				"summary": "Recommend movies by mood",
				"parameters": [
					{
						"type": "string",
						"description": "Mood name when not given in the path",
						"name": "mood",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/models.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.MoodResponse"
										}
									}
								}
							]
						}
					},
					"503": {
						"description": "No snapshot yet",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				}
			}
		},
		"/movies/mood/{mood}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Movies"
				],
				"summary": "Recommend movies by mood",
				"parameters": [
					{
						"type": "string",
						"description": "Mood name",
						"name": "mood",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/models.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.MoodResponse"
										}
									}
								}
							]
						}
					},
					"503": {
						"description": "No snapshot yet",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				}
			}
		},
		"/movies/chat": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Movies"
				],
				"summary": "Recommend movies from free text",
				"parameters": [
					{
						"description": "Free-text request",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.ChatRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/models.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.ChatResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid request",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					},
					"503": {
						"description": "No snapshot yet",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				}
			}
		},
		"/snapshot": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Snapshot"
				],
				"summary": "Active snapshot",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/models.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.SnapshotStatus"
										}
									}
								}
							]
						}
					},
					"503": {
						"description": "No snapshot yet",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				}
			}
		},
		"/snapshot/rescore": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Snapshot"
				],
				"summary": "Re-weight the active snapshot",
				"parameters": [
					{
						"description": "Criteria and weights",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.RescoreRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/models.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.SnapshotStatus"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid weights",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					},
					"503": {
						"description": "No snapshot yet",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				}
			}
		},
		"/snapshot/rebuild": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Snapshot"
				],
				"summary": "Rebuild the snapshot from the dataset",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/models.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.SnapshotStatus"
										}
									}
								}
							]
						}
					},
					"409": {
						"description": "Rebuild already running",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					},
					"422": {
						"description": "Dataset failed validation",
						"schema": {
							"$ref": "#/definitions/models.APIResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"models.APIError": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"details": {
					"type": "object",
					"additionalProperties": true
				},
				"message": {
					"type": "string"
				}
			}
		},
		"models.APIResponse": {
			"type": "object",
			"properties": {
				"data": {},
				"error": {
					"$ref": "#/definitions/models.APIError"
				},
				"metadata": {
					"$ref": "#/definitions/models.Metadata"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"models.Metadata": {
			"type": "object",
			"properties": {
				"query_time_ms": {
					"type": "integer"
				},
				"snapshot_id": {
					"type": "string"
				},
				"timestamp": {
					"type": "string"
				}
			}
		},
		"models.ChatRequest": {
			"type": "object",
			"required": [
				"text"
			],
			"properties": {
				"text": {
					"type": "string",
					"maxLength": 2000
				}
			}
		},
		"models.ChatResponse": {
			"type": "object",
			"properties": {
				"count": {
					"type": "integer"
				},
				"movies": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/recommend.Movie"
					}
				},
				"preferences": {
					"$ref": "#/definitions/recommend.Preferences"
				},
				"warning": {
					"$ref": "#/definitions/recommend.EmptyResultWarning"
				}
			}
		},
		"models.FilterRequest": {
			"type": "object",
			"properties": {
				"genre": {
					"type": "string",
					"maxLength": 64
				},
				"language": {
					"type": "string",
					"maxLength": 16
				},
				"max_runtime": {
					"type": "integer",
					"minimum": 0
				},
				"min_rating": {
					"type": "number",
					"maximum": 10,
					"minimum": 0
				},
				"min_runtime": {
					"type": "integer",
					"minimum": 0
				},
				"min_sentiment": {
					"type": "number",
					"maximum": 1,
					"minimum": -1
				},
				"release_year": {
					"type": "integer",
					"maximum": 3000,
					"minimum": 1800
				},
				"top_n": {
					"type": "integer",
					"minimum": 0
				}
			}
		},
		"models.MovieList": {
			"type": "object",
			"properties": {
				"count": {
					"type": "integer"
				},
				"listings": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/recommend.Listing"
					}
				},
				"movies": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/recommend.Movie"
					}
				},
				"warning": {
					"$ref": "#/definitions/recommend.EmptyResultWarning"
				}
			}
		},
		"models.MoodResponse": {
			"type": "object",
			"properties": {
				"count": {
					"type": "integer"
				},
				"listings": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/recommend.Listing"
					}
				},
				"mood": {
					"type": "string"
				},
				"movies": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/recommend.Movie"
					}
				},
				"warning": {
					"$ref": "#/definitions/recommend.EmptyResultWarning"
				}
			}
		},
		"models.RescoreRequest": {
			"type": "object",
			"required": [
				"weights"
			],
			"properties": {
				"criteria": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"weights": {
					"type": "array",
					"minItems": 1,
					"items": {
						"type": "number"
					}
				}
			}
		},
		"models.SnapshotStatus": {
			"type": "object",
			"properties": {
				"built_at": {
					"type": "string"
				},
				"criteria": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"engine": {
					"type": "object"
				},
				"id": {
					"type": "string"
				},
				"movies": {
					"type": "integer"
				},
				"swaps": {
					"type": "integer"
				},
				"weights": {
					"type": "array",
					"items": {
						"type": "number"
					}
				}
			}
		},
		"recommend.EmptyResultWarning": {
			"type": "object",
			"properties": {
				"kind": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"recommend.Listing": {
			"type": "object",
			"properties": {
				"sentiment_score": {
					"type": "number"
				},
				"title": {
					"type": "string"
				},
				"topsis_score": {
					"type": "number"
				},
				"vote_average": {
					"type": "number"
				},
				"vote_count": {
					"type": "integer"
				}
			}
		},
		"recommend.Movie": {
			"type": "object",
			"properties": {
				"genres_list": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"original_language": {
					"type": "string"
				},
				"overview": {
					"type": "string"
				},
				"release_year": {
					"type": "integer"
				},
				"runtime": {
					"type": "integer"
				},
				"sentiment_score": {
					"type": "number"
				},
				"title": {
					"type": "string"
				},
				"topsis_score": {
					"type": "number"
				},
				"vote_average": {
					"type": "number"
				},
				"vote_count": {
					"type": "integer"
				}
			}
		},
		"recommend.Preferences": {
			"type": "object",
			"properties": {
				"genre": {
					"type": "string"
				},
				"language": {
					"type": "string"
				},
				"max_runtime": {
					"type": "integer"
				},
				"min_rating": {
					"type": "number"
				},
				"min_runtime": {
					"type": "integer"
				},
				"min_sentiment": {
					"type": "number"
				},
				"release_year": {
					"type": "integer"
				},
				"top_n": {
					"type": "integer"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Marquee API",
	Description:      "Ranks a movie catalogue with TOPSIS and serves filtered, mood-based and free-text recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
