package handler

import "github.com/gin-gonic/gin"

// Handlers bundles every HTTP handler the gateway mounts.
type Handlers struct {
	Auth        *AuthHandler
	Students    *StudentHandler
	Import      *ImportHandler
	Teachers    *TeacherHandler
	Departments *DepartmentHandler
	Courses     *CourseHandler
	Enrollments *EnrollmentHandler
	Schedules   *ScheduleHandler
	Exams       *ExamHandler
	Payments    *PaymentHandler
	Reports     *ReportHandler
	Cache       *CacheHandler
	Audit       *AuditHandler
	Status      *StatusHandler
}

// Register mounts the console API under the given prefix.
func Register(r *gin.Engine, prefix string, h Handlers) {
	api := r.Group(prefix)

	api.POST("/session/login", h.Auth.Login)
	api.POST("/session/logout", h.Auth.Logout)
	api.GET("/session", h.Auth.Status)

	registerCollection(api, "/students", collectionHandler{
		list: h.Students.List, get: h.Students.Get, create: h.Students.Create,
		update: h.Students.Update, remove: h.Students.Delete,
	})
	api.POST("/students/import", h.Import.ImportStudents)

	registerCollection(api, "/teachers", collectionHandler{
		list: h.Teachers.List, get: h.Teachers.Get, create: h.Teachers.Create,
		update: h.Teachers.Update, remove: h.Teachers.Delete,
	})
	registerCollection(api, "/departments", collectionHandler{
		list: h.Departments.List, get: h.Departments.Get, create: h.Departments.Create,
		update: h.Departments.Update, remove: h.Departments.Delete,
	})
	registerCollection(api, "/courses", collectionHandler{
		list: h.Courses.List, get: h.Courses.Get, create: h.Courses.Create,
		update: h.Courses.Update, remove: h.Courses.Delete,
	})
	registerCollection(api, "/enrollments", collectionHandler{
		list: h.Enrollments.List, get: h.Enrollments.Get, create: h.Enrollments.Create,
		update: h.Enrollments.Update, remove: h.Enrollments.Delete,
	})
	registerCollection(api, "/schedules", collectionHandler{
		list: h.Schedules.List, get: h.Schedules.Get, create: h.Schedules.Create,
		update: h.Schedules.Update, remove: h.Schedules.Delete,
	})
	registerCollection(api, "/exams", collectionHandler{
		list: h.Exams.List, get: h.Exams.Get, create: h.Exams.Create,
		update: h.Exams.Update, remove: h.Exams.Delete,
	})
	registerCollection(api, "/payments", collectionHandler{
		list: h.Payments.List, get: h.Payments.Get, create: h.Payments.Create,
		update: h.Payments.Update, remove: h.Payments.Delete,
	})

	api.GET("/reports/top-students", h.Reports.TopStudents)
	api.GET("/reports/debtors", h.Reports.Debtors)
	api.GET("/reports/above-average", h.Reports.AboveAverage)
	api.GET("/reports/:name/export", h.Reports.Export)

	api.POST("/cache/warm", h.Cache.Warm)
	api.GET("/cache/collections", h.Cache.Tags)

	if h.Audit != nil {
		api.GET("/audit", h.Audit.Recent)
	}
	api.GET("/status", h.Status.Status)
}

type collectionHandler struct {
	list, get, create, update, remove gin.HandlerFunc
}

func registerCollection(g *gin.RouterGroup, path string, h collectionHandler) {
	g.GET(path, h.list)
	g.POST(path, h.create)
	g.GET(path+"/:id", h.get)
	g.PUT(path+"/:id", h.update)
	g.DELETE(path+"/:id", h.remove)
}
