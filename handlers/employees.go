// File: frontdesk/handlers/employees.go
package handlers

import (
	"net/http"

	"frontdesk/directory"

	"github.com/gin-gonic/gin"
)

// ListEmployeesHandler returns the employee directory, optionally filtered
// by department.
func ListEmployeesHandler(dir directory.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		if dept := c.Query("department"); dept != "" {
			c.JSON(http.StatusOK, gin.H{
				"employees": dir.ListByDepartment(dept),
				"success":   true,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"employees": dir.All(),
			"success":   true,
		})
	}
}
