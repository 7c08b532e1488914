package utils

import (
	"log"
	"sat/database"
	"sat/models"
	"time"

	"github.com/go-resty/resty/v2"
)

// completionEvent is the payload posted to a company's webhook URL when an
// employee completes a training module
type completionEvent struct {
	Event       string `json:"event"`
	EmployeeID  uint   `json:"employee_id"`
	Employee    string `json:"employee_name"`
	ModuleID    uint   `json:"module_id"`
	ModuleTitle string `json:"module_title"`
	Score       int    `json:"score"`
	CompletedAt string `json:"completed_at"`
}

// NotifyCompletion posts a completion event to the employee's company webhook.
// Fire-and-forget: failures are logged, never surfaced to the caller.
func NotifyCompletion(employee *models.Employee, module *models.TrainingModule, score int) {
	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", employee.CompanyID, false).
		First(&company).Error; err != nil {
		return
	}
	if company.WebhookURL == "" {
		return
	}

	event := completionEvent{
		Event:       "module.completed",
		EmployeeID:  employee.ID,
		Employee:    employee.Name,
		ModuleID:    module.ID,
		ModuleTitle: module.Title,
		Score:       score,
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
	}

	go func(url string) {
		client := resty.New().SetTimeout(10 * time.Second)
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(event).
			Post(url)
		if err != nil {
			log.Printf("Webhook delivery failed for company %d: %v", company.ID, err)
			return
		}
		if resp.StatusCode() >= 300 {
			log.Printf("Webhook for company %d returned status %d", company.ID, resp.StatusCode())
		}
	}(company.WebhookURL)
}
