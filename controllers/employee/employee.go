package employeeController

import (
	"sat/database"
	"sat/middleware"
	"sat/models"
	"sat/services"
	"time"

	"github.com/gofiber/fiber/v2"
)

// currentEmployee loads the authenticated employee or writes the error response
func currentEmployee(c *fiber.Ctx) (*models.Employee, error) {
	employeeID, ok := c.Locals("subjectId").(uint)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var employee models.Employee
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", employeeID, false).First(&employee).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Employee not found!", nil)
	}

	return &employee, nil
}

// moduleView is the employee-facing module payload with answers stripped
type moduleView struct {
	ID              uint                       `json:"id"`
	Title           string                     `json:"title"`
	Description     string                     `json:"description"`
	VideoURL        string                     `json:"video_url"`
	DurationMinutes int                        `json:"duration_minutes"`
	DifficultyLevel string                     `json:"difficulty_level"`
	Category        string                     `json:"category"`
	PassingScore    int                        `json:"passing_score"`
	QuestionCount   int                        `json:"question_count"`
	Questions       []models.SanitizedQuestion `json:"quiz_questions"`
}

func sanitizeModule(module *models.TrainingModule) moduleView {
	view := moduleView{
		ID:              module.ID,
		Title:           module.Title,
		Description:     module.Description,
		VideoURL:        module.VideoURL,
		DurationMinutes: module.DurationMinutes,
		DifficultyLevel: module.DifficultyLevel,
		Category:        module.Category,
		PassingScore:    module.PassingScore,
		Questions:       []models.SanitizedQuestion{},
	}

	questions, err := module.QuestionSet()
	if err != nil {
		// Malformed catalog data: expose the module without its quiz
		return view
	}
	view.QuestionCount = len(questions)
	view.Questions = models.Sanitize(questions)
	return view
}

// GetProfile returns the authenticated employee's profile
func GetProfile(c *fiber.Ctx) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", employee)
}

// GetModules returns all active training modules with answers stripped
func GetModules(c *fiber.Ctx) error {
	if _, err := currentEmployee(c); err != nil {
		return err
	}

	var modules []models.TrainingModule
	if err := database.Database.Db.Where("is_active = ? AND is_deleted = ?", true, false).Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	views := make([]moduleView, len(modules))
	for i := range modules {
		views[i] = sanitizeModule(&modules[i])
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": views,
	})
}

// GetModule returns one training module with answers stripped
func GetModule(c *fiber.Ctx) error {
	if _, err := currentEmployee(c); err != nil {
		return err
	}

	moduleID := c.Locals("moduleID").(int)

	var module models.TrainingModule
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", fiber.Map{
		"module": sanitizeModule(&module),
	})
}

// GetDashboard returns the employee dashboard with statistics and recent activity
func GetDashboard(c *fiber.Ctx) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return err
	}

	db := database.Database.Db
	reports := services.NewReports(db)
	summary := reports.EmployeeProgressSummary(employee.ID)

	var progress []models.EmployeeProgress
	db.Where("employee_id = ?", employee.ID).Find(&progress)

	inProgress := 0
	for _, p := range progress {
		if p.Status == models.StatusInProgress {
			inProgress++
		}
	}

	var recent []models.EmployeeProgress
	db.Where("employee_id = ? AND started_at IS NOT NULL", employee.ID).
		Order("started_at desc").Limit(5).Find(&recent)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"employee": employee,
		"statistics": fiber.Map{
			"completed_modules":   summary.CompletedCount,
			"total_assigned":      summary.TotalAssigned,
			"in_progress_modules": inProgress,
			"overall_progress":    summary.Percent,
		},
		"recent_activity": recent,
		"progress":        progress,
	})
}

// DownloadProgressReport returns the employee's full progress report
func DownloadProgressReport(c *fiber.Ctx) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return err
	}

	db := database.Database.Db
	summary := services.NewReports(db).EmployeeProgressSummary(employee.ID)

	var progress []models.EmployeeProgress
	db.Where("employee_id = ?", employee.ID).Find(&progress)

	scoreSum := 0
	scoreCount := 0
	for _, p := range progress {
		if p.Score != nil {
			scoreSum += *p.Score
			scoreCount++
		}
	}
	averageScore := 0
	if scoreCount > 0 {
		averageScore = scoreSum / scoreCount
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report generated successfully!", fiber.Map{
		"employee":     employee,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"progress_summary": fiber.Map{
			"total_assigned":    summary.TotalAssigned,
			"completed_modules": summary.CompletedCount,
			"completion_rate":   summary.Percent,
			"average_score":     averageScore,
		},
		"detailed_progress": progress,
	})
}
