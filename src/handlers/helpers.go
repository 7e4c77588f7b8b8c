package handlers

import (
	"net/http"

	"github.com/username/centavo/backend/src/utils"
)

func sendJSONError(w http.ResponseWriter, message string, statusCode int) {
	utils.SendJSONError(w, message, statusCode)
}
