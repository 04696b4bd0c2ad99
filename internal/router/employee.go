package router

import (
	"orgchart/internal/handler"
	"orgchart/internal/middleware"

	"github.com/gin-gonic/gin"
)

type EmployeeRouter struct {
	employeeHandler *handler.EmployeeHandler
	infoHandler     *handler.InfoHandler
	rateLimit       *middleware.RateLimit
}

func NewEmployeeRouter(
	employeeHandler *handler.EmployeeHandler,
	infoHandler *handler.InfoHandler,
	rateLimit *middleware.RateLimit,
) *EmployeeRouter {
	return &EmployeeRouter{
		employeeHandler: employeeHandler,
		infoHandler:     infoHandler,
		rateLimit:       rateLimit,
	}
}

func (er *EmployeeRouter) RegisterRoutes(r *gin.Engine) {
	r.GET("/", er.infoHandler.Info)
	r.GET("/employees", er.employeeHandler.GetEmployees)

	// 寫入類端點才限流
	write := r.Group("", er.rateLimit.Guard())
	{
		write.PUT("/employees", er.employeeHandler.ReplaceTree)
		write.POST("/employees/batch", er.employeeHandler.BatchUpsert)
		write.POST("/update-manager", er.employeeHandler.UpdateManager)
		write.POST("/update-employee-manager", er.employeeHandler.UpdateManager)
		write.POST("/swap-positions", er.employeeHandler.SwapPositions)
	}
}
