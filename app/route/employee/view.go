package employee

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/angelofallars/dpm/app/component"
	"github.com/angelofallars/dpm/internal/employee"
)

const (
	base   = "/employees"
	target = "#employees"
)

var columns = []component.Column{
	{Key: "name", Label: "Name", Sortable: true},
	{Key: "position", Label: "Position", Sortable: true},
	{Key: "department", Label: "Department", Sortable: true},
	{Key: "salary", Label: "Salary", Sortable: true},
	{Key: "hireDate", Label: "Hire date", Sortable: true},
	{Key: "status", Label: "Status", Sortable: true},
}

func ListView(v employee.View) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("section", component.Attr("id", "employees"))
		w.Elem("h1", "Employees")

		w.Render(ctx, component.Stats(
			component.Stat{Label: "Total", Value: strconv.Itoa(v.Stats.Total)},
			component.Stat{Label: "Active", Value: strconv.Itoa(v.Stats.Active)},
			component.Stat{Label: "Inactive", Value: strconv.Itoa(v.Stats.Inactive)},
			component.Stat{Label: "Terminated", Value: strconv.Itoa(v.Stats.Terminated)},
			component.Stat{Label: "Departments", Value: strconv.Itoa(v.Stats.Departments)},
		))

		w.Render(ctx, filters(v))

		w.Open("table")
		w.Render(ctx, component.TableHead(base, target, v.State, columns))
		w.Open("tbody")
		for _, e := range v.Page.Items {
			w.Open("tr", component.Attr("id", "employee-"+e.ID))
			w.Open("td")
			w.Elem("a", e.FullName(), component.Attr("href", base+"/"+e.ID))
			w.Elem("small", e.Email)
			w.Close("td")
			w.Elem("td", e.Position)
			w.Elem("td", e.Department)
			w.Elem("td", fmt.Sprintf("%.2f", e.Salary))
			w.Elem("td", e.HireDate)
			w.Elem("td", string(e.Status), component.Attr("class", "status "+string(e.Status)))
			w.Close("tr")
		}
		w.Close("tbody")
		w.Close("table")
		if len(v.Page.Items) == 0 {
			w.Elem("p", "No employees match the current filters.", component.Attr("class", "empty"))
		}
		w.Render(ctx, component.Pagination(base, target, v.State, v.Page))

		w.Elem("h2", "Add employee")
		w.Render(ctx, form(employee.Employee{}, "hx-post", base))
		w.Close("section")
	})
}

func filters(v employee.View) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("form", component.Attr(
			"hx-get", base, "hx-target", target, "hx-swap", "outerHTML", "hx-push-url", "true",
			"hx-trigger", "input changed delay:300ms, change",
			"class", "filters",
		))
		w.Open("input", component.Attr("type", "search", "name", employee.FilterSearch, "value", v.State.Filter[employee.FilterSearch], "placeholder", "Search employees"))

		department := v.State.Filter[employee.FilterDepartment]
		w.Open("select", component.Attr("name", employee.FilterDepartment))
		w.Elem("option", "All departments", component.Attr("value", "all"))
		for _, d := range v.Departments {
			w.Elem("option", d, component.Attr("value", d, "selected", d == department))
		}
		w.Close("select")

		status := v.State.Filter[employee.FilterStatus]
		w.Open("select", component.Attr("name", employee.FilterStatus))
		w.Elem("option", "All statuses", component.Attr("value", "all"))
		for _, s := range employee.Statuses {
			w.Elem("option", string(s), component.Attr("value", string(s), "selected", string(s) == status))
		}
		w.Close("select")
		w.Close("form")
	})
}

// DetailView shows one employee with the edit form below.
func DetailView(e employee.Employee) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("section", component.Attr("id", "employee"))
		w.Elem("h1", e.FullName())
		w.Elem("p", e.Position+", "+e.Department)

		w.Open("dl")
		for _, row := range [][2]string{
			{"Email", e.Email},
			{"Phone", e.Phone},
			{"Status", string(e.Status)},
			{"Hire date", e.HireDate},
			{"Address", e.Address},
			{"Manager", e.Manager},
			{"Skills", strings.Join(e.Skills, ", ")},
			{"Emergency contact", fmt.Sprintf("%s (%s) %s", e.EmergencyContact.Name, e.EmergencyContact.Relationship, e.EmergencyContact.Phone)},
			{"Notes", e.Notes},
		} {
			if row[1] == "" {
				continue
			}
			w.Elem("dt", row[0])
			w.Elem("dd", row[1])
		}
		w.Close("dl")

		w.Elem("h2", "Edit")
		w.Render(ctx, form(e, "hx-put", base+"/"+e.ID))
		w.Elem("button", "Delete", component.Attr(
			"type", "button",
			"hx-delete", base+"/"+e.ID,
			"hx-target", "#employee",
			"hx-swap", "outerHTML",
		))
		w.Close("section")
	})
}

func form(e employee.Employee, method, action string) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		swap := target
		if e.ID != "" {
			swap = "#employee"
		}
		w.Open("form", component.Attr(method, action, "hx-target", swap, "hx-swap", "outerHTML", "class", "employee-form"))

		input := func(name, label, kind, value string) {
			w.Open("label")
			w.Text(label)
			w.Open("input", component.Attr("type", kind, "name", name, "value", value))
			w.Close("label")
		}
		input("firstName", "First name", "text", e.FirstName)
		input("lastName", "Last name", "text", e.LastName)
		input("email", "Email", "email", e.Email)
		input("phone", "Phone", "tel", e.Phone)
		input("position", "Position", "text", e.Position)

		w.Open("label")
		w.Text("Department")
		w.Open("select", component.Attr("name", "department"))
		for _, d := range employee.Departments {
			w.Elem("option", d, component.Attr("value", d, "selected", d == e.Department))
		}
		w.Close("select")
		w.Close("label")

		salary := ""
		if e.Salary > 0 {
			salary = strconv.FormatFloat(e.Salary, 'f', -1, 64)
		}
		input("salary", "Salary", "number", salary)
		input("hireDate", "Hire date", "date", e.HireDate)

		w.Open("label")
		w.Text("Status")
		w.Open("select", component.Attr("name", "status"))
		for _, s := range employee.Statuses {
			w.Elem("option", string(s), component.Attr("value", string(s), "selected", s == e.Status))
		}
		w.Close("select")
		w.Close("label")

		input("address", "Address", "text", e.Address)
		input("emergencyContact.name", "Emergency contact", "text", e.EmergencyContact.Name)
		input("emergencyContact.phone", "Contact phone", "tel", e.EmergencyContact.Phone)
		input("emergencyContact.relationship", "Relationship", "text", e.EmergencyContact.Relationship)
		input("manager", "Manager", "text", e.Manager)
		input("skills", "Skills (comma separated)", "text", strings.Join(e.Skills, ", "))

		w.Open("label")
		w.Text("Notes")
		w.Open("textarea", component.Attr("name", "notes"))
		w.Text(e.Notes)
		w.Close("textarea")
		w.Close("label")

		w.Elem("button", "Save", component.Attr("type", "submit"))
		w.Close("form")
	})
}
