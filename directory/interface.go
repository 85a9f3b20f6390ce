package directory

import "frontdesk/models"

// Directory defines read-only lookups over the employee table. All lookups
// are total: "not found" is a nil or empty result, never an error.
type Directory interface {
	All() []models.Employee
	FindByID(id string) *models.Employee
	FindByName(query string) *models.Employee
	CheckAvailability(emp *models.Employee) models.Availability
	GetFallback(employeeID string) *models.Employee
	ListByDepartment(department string) []models.Employee
}
