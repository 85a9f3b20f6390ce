package directory

import "frontdesk/models"

// Seed returns the demo employee table. Loaded once at startup.
func Seed() []models.Employee {
	return []models.Employee{
		{
			ID:          "emp001",
			Name:        "Ahmed Al Mansoori",
			Department:  "Engineering",
			Title:       "Senior Software Engineer",
			Email:       "ahmed.almansoori@company.com",
			Avatar:      "/avatars/ahmed.jpg",
			IsAvailable: true,
			Meetings: []models.Meeting{
				{Start: "09:00", End: "10:00", Title: "Team Standup"},
			},
			FallbackEmployee: "emp002",
		},
		{
			ID:          "emp002",
			Name:        "Fatima Al Zarooni",
			Department:  "Engineering",
			Title:       "Engineering Manager",
			Email:       "fatima.alzarooni@company.com",
			Avatar:      "/avatars/fatima.jpg",
			IsAvailable: true,
			Meetings: []models.Meeting{
				{Start: "11:00", End: "12:00", Title: "1:1 with Team"},
			},
			FallbackEmployee: "emp003",
		},
		{
			ID:               "emp003",
			Name:             "Mohammed Al Falasi",
			Department:       "Engineering",
			Title:            "Lead Developer",
			Email:            "mohammed.alfalasi@company.com",
			Avatar:           "/avatars/mohammed.jpg",
			IsAvailable:      true,
			Meetings:         []models.Meeting{},
			FallbackEmployee: "emp002",
		},
		{
			ID:          "emp004",
			Name:        "Aisha Al Hashimi",
			Department:  "Product",
			Title:       "Product Manager",
			Email:       "aisha.alhashimi@company.com",
			Avatar:      "/avatars/aisha.jpg",
			IsAvailable: false,
			Meetings: []models.Meeting{
				{Start: "09:00", End: "12:00", Title: "Client Workshop"},
			},
			FallbackEmployee: "emp005",
		},
		{
			ID:               "emp005",
			Name:             "Omar Al Mazrouei",
			Department:       "Product",
			Title:            "Senior Product Manager",
			Email:            "omar.almazrouei@company.com",
			Avatar:           "/avatars/omar.jpg",
			IsAvailable:      true,
			Meetings:         []models.Meeting{},
			FallbackEmployee: "emp004",
		},
		{
			ID:               "emp006",
			Name:             "Mariam Al Suwaidi",
			Department:       "Design",
			Title:            "UX Designer",
			Email:            "mariam.alsuwaidi@company.com",
			Avatar:           "/avatars/mariam.jpg",
			IsAvailable:      true,
			Meetings:         []models.Meeting{},
			FallbackEmployee: "emp007",
		},
		{
			ID:          "emp007",
			Name:        "Khalid Al Naqbi",
			Department:  "Design",
			Title:       "Design Lead",
			Email:       "khalid.alnaqbi@company.com",
			Avatar:      "/avatars/khalid.jpg",
			IsAvailable: true,
			Meetings: []models.Meeting{
				{Start: "15:00", End: "16:00", Title: "Design Critique"},
			},
		},
		{
			ID:          "emp008",
			Name:        "Noura Al Kaabi",
			Department:  "Sales",
			Title:       "Sales Manager",
			Email:       "noura.alkaabi@company.com",
			Avatar:      "/avatars/noura.jpg",
			IsAvailable: false,
			Meetings: []models.Meeting{
				{Start: "13:00", End: "14:30", Title: "Client Meeting"},
			},
			FallbackEmployee: "emp009",
		},
		{
			ID:          "emp009",
			Name:        "Saeed Al Dhaheri",
			Department:  "Sales",
			Title:       "Account Executive",
			Email:       "saeed.aldhaheri@company.com",
			Avatar:      "/avatars/saeed.jpg",
			IsAvailable: true,
			Meetings:    []models.Meeting{},
		},
		{
			ID:          "emp010",
			Name:        "Hessa Al Maktoum",
			Department:  "Human Resources",
			Title:       "HR Manager",
			Email:       "hessa.almaktoum@company.com",
			Avatar:      "/avatars/hessa.jpg",
			IsAvailable: true,
			Meetings:    []models.Meeting{},
		},
		{
			// Escalation target for human handoffs; always reachable.
			ID:          "emp011",
			Name:        "Rashid Al Mansoori",
			Department:  "Reception",
			Title:       "Reception Supervisor",
			Email:       "rashid.almansoori@company.com",
			Avatar:      "/avatars/rashid.jpg",
			IsAvailable: true,
			Meetings:    []models.Meeting{},
		},
	}
}
