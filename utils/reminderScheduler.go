package utils

import (
	"log"
	"sat/database"
	"sat/models"
	"sat/services"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[TRAINING-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// processOverdueReminders emails employees whose assignments have sat in
// NOT_STARTED or FAILED for more than 7 days
func processOverdueReminders() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -7)

	var overdue []models.EmployeeProgress
	if err := db.Where("status IN ? AND updated_at <= ?",
		[]string{models.StatusNotStarted, models.StatusFailed}, cutoff).
		Find(&overdue).Error; err != nil {
		logScheduler("Error fetching overdue assignments: " + err.Error())
		return
	}

	sent := 0
	for _, record := range overdue {
		var employee models.Employee
		if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", record.EmployeeID, true, false).
			First(&employee).Error; err != nil || employee.Email == "" {
			continue
		}

		var module models.TrainingModule
		if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", record.ModuleID, true, false).
			First(&module).Error; err != nil {
			continue
		}

		daysPending := int(time.Since(record.UpdatedAt).Hours() / 24)
		SendReminderEmail(employee.Email, employee.Name, module.Title, daysPending)
		sent++
	}

	logScheduler("Overdue reminder run finished, " + strconv.Itoa(sent) + " reminders sent")
}

// processWeeklyDigests emails each company contact its completion summary
func processWeeklyDigests() {
	db := database.Database.Db
	reports := services.NewReports(db)

	var companies []models.Company
	if err := db.Where("is_active = ? AND is_deleted = ?", true, false).Find(&companies).Error; err != nil {
		logScheduler("Error fetching companies for digest: " + err.Error())
		return
	}

	for _, company := range companies {
		if company.ContactEmail == "" {
			continue
		}

		employeeIDs := db.Model(&models.Employee{}).Select("id").
			Where("company_id = ? AND is_deleted = ?", company.ID, false)

		var total, completed int64
		db.Model(&models.EmployeeProgress{}).Where("employee_id IN (?)", employeeIDs).Count(&total)
		db.Model(&models.EmployeeProgress{}).Where("employee_id IN (?) AND status = ?", employeeIDs, models.StatusCompleted).Count(&completed)
		if total == 0 {
			continue
		}

		rate := reports.CompanyCompletionRate(company.ID)
		SendWeeklyDigestEmail(company.ContactEmail, company.Name, rate, completed, total)
	}

	logScheduler("Weekly digest run finished")
}

// InitializeReminderSchedulers starts the training reminder cron jobs
func InitializeReminderSchedulers() *cron.Cron {
	logScheduler("Initializing training schedulers...")

	c := cron.New()

	// Daily 9 AM overdue reminders
	c.AddFunc("0 9 * * *", processOverdueReminders)

	// Monday 8 AM weekly digest
	c.AddFunc("0 8 * * 1", processWeeklyDigests)

	c.Start()

	logScheduler("All training schedulers initialized successfully")
	return c
}
