package employee

import (
	"cmp"
	"net/http"
	"strings"

	"github.com/angelofallars/dpm/app/confirm"
	"github.com/angelofallars/dpm/app/event"
	"github.com/angelofallars/dpm/app/respond"
	"github.com/angelofallars/dpm/internal/employee"
	"github.com/angelofallars/dpm/internal/listing"
	"github.com/go-chi/chi/v5"
)

type HandlerGroup struct {
	directory *employee.Directory
	pageSize  int
}

func NewHandlerGroup(directory *employee.Directory, pageSize int) *HandlerGroup {
	return &HandlerGroup{directory: directory, pageSize: cmp.Or(pageSize, listing.DefaultPageSize)}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", hg.handleList)
		r.Post("/", hg.handleCreate)
		r.Get("/{id}", hg.handleGet)
		r.Put("/{id}", hg.handleUpdate)
		r.Delete("/{id}", confirm.Require(hg.handleDelete))
	})
}

func (hg *HandlerGroup) view(r *http.Request) employee.View {
	state := listing.ParseState(r.URL.Query(), employee.FilterSearch, employee.FilterDepartment, employee.FilterStatus)
	state.Sort.Column = cmp.Or(state.Sort.Column, "name")
	if r.URL.Query().Get("order") == "" {
		state.Sort.Order = listing.Asc
	}
	return hg.directory.List(r.Context(), state, hg.pageSize)
}

func (hg *HandlerGroup) handleList(w http.ResponseWriter, r *http.Request) {
	v := hg.view(r)
	respond.Render(w, r, http.StatusOK, v, ListView(v))
}

func (hg *HandlerGroup) handleGet(w http.ResponseWriter, r *http.Request) {
	e, err := hg.directory.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Render(w, r, http.StatusOK, e, DetailView(e))
}

type contactRequest struct {
	Name         string `json:"name" form:"name"`
	Phone        string `json:"phone" form:"phone"`
	Relationship string `json:"relationship" form:"relationship"`
}

type employeeRequest struct {
	FirstName        string         `json:"firstName" form:"firstName"`
	LastName         string         `json:"lastName" form:"lastName"`
	Email            string         `json:"email" form:"email"`
	Phone            string         `json:"phone" form:"phone"`
	Position         string         `json:"position" form:"position"`
	Department       string         `json:"department" form:"department"`
	Salary           float64        `json:"salary" form:"salary"`
	HireDate         string         `json:"hireDate" form:"hireDate"`
	Status           string         `json:"status" form:"status"`
	Address          string         `json:"address" form:"address"`
	EmergencyContact contactRequest `json:"emergencyContact" form:"emergencyContact"`
	Manager          string         `json:"manager" form:"manager"`
	Skills           []string       `json:"skills" form:"-"`
	Notes            string         `json:"notes" form:"notes"`

	// SkillsText is the comma separated form input.
	SkillsText string `json:"-" form:"skills"`
}

// employeeRequest satisfies [render.Binder]
func (req *employeeRequest) Bind(r *http.Request) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.SkillsText != "" {
		req.Skills = strings.Split(req.SkillsText, ",")
	}
	return nil
}

func (req *employeeRequest) toEmployee() employee.Employee {
	return employee.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
		HireDate:   req.HireDate,
		Status:     employee.Status(req.Status),
		Address:    req.Address,
		EmergencyContact: employee.EmergencyContact{
			Name:         req.EmergencyContact.Name,
			Phone:        req.EmergencyContact.Phone,
			Relationship: req.EmergencyContact.Relationship,
		},
		Manager: req.Manager,
		Skills:  req.Skills,
		Notes:   req.Notes,
	}
}

func (hg *HandlerGroup) handleCreate(w http.ResponseWriter, r *http.Request) {
	req := &employeeRequest{}
	if err := respond.Bind(r, req); err != nil {
		respond.Error(w, r, err)
		return
	}

	e, err := hg.directory.Create(r.Context(), req.toEmployee())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	v := hg.view(r)
	respond.Render(w, r, http.StatusCreated, e, ListView(v), event.TriggerEmployeesChanged)
}

func (hg *HandlerGroup) handleUpdate(w http.ResponseWriter, r *http.Request) {
	req := &employeeRequest{}
	if err := respond.Bind(r, req); err != nil {
		respond.Error(w, r, err)
		return
	}

	e, err := hg.directory.Update(r.Context(), chi.URLParam(r, "id"), req.toEmployee())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.Render(w, r, http.StatusOK, e, DetailView(e), event.TriggerEmployeesChanged)
}

func (hg *HandlerGroup) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := hg.directory.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.Deleted(w, r, ListView(hg.view(r)), event.TriggerEmployeesChanged)
}
