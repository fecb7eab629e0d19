package app

import (
	"github.com/angelofallars/dpm/app/route/category"
	"github.com/angelofallars/dpm/app/route/dashboard"
	"github.com/angelofallars/dpm/app/route/employee"
	"github.com/angelofallars/dpm/app/route/pricing"
	"github.com/angelofallars/dpm/app/route/todo"
	"github.com/angelofallars/dpm/app/route/work"
	"github.com/go-chi/chi/v5/middleware"
)

func (a *App) RegisterRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.RealIP)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	pricing.NewHandlerGroup().Mount(a.router)
	todo.NewHandlerGroup(a.svc.Todos).Mount(a.router)
	work.NewHandlerGroup(a.svc.Work, a.svc.Categories).Mount(a.router)
	category.NewHandlerGroup(a.svc.Categories).Mount(a.router)
	dashboard.NewHandlerGroup(a.svc.Work, a.svc.Categories, a.svc.PageSize).Mount(a.router)
	employee.NewHandlerGroup(a.svc.Employees, a.svc.PageSize).Mount(a.router)
}
