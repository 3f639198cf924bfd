package response

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope so the mobile client can
// unwrap responses uniformly.

func Success(c *gin.Context, status int, message string, data interface{}) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
		"data":    gin.H{},
	})
}
