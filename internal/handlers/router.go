package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/practice-exam-service/internal/services"
	"github.com/SAP-F-2025/practice-exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

const serviceName = "practice-exam-service"

type HandlerManager struct {
	examHandler     *ExamHandler
	adminHandler    *AdminHandler
	questionHandler *QuestionHandler
	sessionHandler  *SessionHandler
	shareHandler    *ShareHandler
	courseHandler   *CourseHandler
	debugHandler    *DebugHandler
	logger          utils.Logger
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		examHandler:     NewExamHandler(serviceManager.Exam(), logger),
		adminHandler:    NewAdminHandler(serviceManager.Exam(), logger),
		questionHandler: NewQuestionHandler(serviceManager.Question(), logger),
		sessionHandler:  NewSessionHandler(serviceManager.Session(), serviceManager.Export(), logger),
		shareHandler:    NewShareHandler(serviceManager.Share(), logger),
		courseHandler:   NewCourseHandler(serviceManager.Course(), logger),
		debugHandler:    NewDebugHandler(serviceManager.Diagnostics(), logger),
		logger:          logger,
	}
}

// SetupRoutes sets up all API routes. requireAuth guards everything under
// /api.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine, requireAuth gin.HandlerFunc) {
	router.Use(utils.RequestID(), utils.LoggerMiddleware(hm.logger))

	router.GET("/health", HealthCheck)

	api := router.Group("/api", requireAuth)
	{
		exams := api.Group("/exams")
		{
			exams.GET("", hm.examHandler.ListExams)
			exams.GET("/:id", hm.examHandler.GetExam)
			exams.DELETE("/:id", hm.examHandler.DeleteExam)
		}

		admin := api.Group("/admin")
		{
			admin.DELETE("/exams/:exam_id", hm.adminHandler.DeleteExam)
		}

		api.GET("/questions", hm.questionHandler.ListQuestions)

		session := api.Group("/session")
		{
			session.GET("/stats", hm.sessionHandler.GetStats)
			session.GET("/export", hm.sessionHandler.ExportSessions)
		}

		api.GET("/share/list", hm.shareHandler.ListShares)
		api.GET("/courses/:exam_id", hm.courseHandler.GetCourse)
		api.GET("/debug/check-ai-data", hm.debugHandler.CheckAIData)
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}
