package handlers

// @title Image Relay API
// @version 1.0
// @description Relays a text prompt to a generative image model and returns the image as base64
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api

// @tag.name images
// @tag.description Image generation
