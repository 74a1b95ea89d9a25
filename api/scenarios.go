/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Provides pre-built scenarios that populate the database with realistic
	planning data for demos and frontend development. Each scenario creates
	employees, schools, assignments and day-scoped records anchored on the
	current business week, so the board shows something immediately.

AVAILABLE SCENARIOS:

	semaine-type:   Three drivers on circuits 110/204/301, AM and PM shifts
	remplacements:  Absence, vacated shift and unassigned task feeding the pool
	semaine-ferie:  A holiday plus a dispatcher on an admin shift

HOW SCENARIOS WORK:
 1. Reset database (clear all data)
 2. Create schools and employees
 3. Create circuit assignments covering the school year
 4. Add the scenario's day-scoped records (absences, holidays, overrides)

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "remplacements"}

ADDING NEW SCENARIOS:
 1. Add to 'scenarios' slice with ID, name, description
 2. Create loader function: loadXxxScenario(ctx, repo)
 3. Add case to LoadScenario handler

NOTE:

	Scenarios reset the database. Only use in development/demo environments.

SEE ALSO:
  - handlers.go: the CRUD surface the frontend uses afterwards
  - planning/schedule.go: the computation the demo data feeds
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/berlines/route-planner/planning"
)

// ScenarioDTO describes one loadable demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "semaine-type",
		Name:        "Semaine type",
		Description: "Trois chauffeurs sur les circuits 110, 204 et 301, quarts AM et PM",
	},
	{
		ID:          "remplacements",
		Name:        "Remplacements",
		Description: "Absence, quart libéré et tâche sans chauffeur dans le pool",
	},
	{
		ID:          "semaine-ferie",
		Name:        "Semaine avec férié",
		Description: "Jour férié le vendredi et un quart administratif",
	},
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// GetCurrentScenario returns the currently loaded scenario, if any.
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	if h.currentScenario == "" {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	for _, s := range scenarios {
		if s.ID == h.currentScenario {
			writeJSON(w, http.StatusOK, s)
			return
		}
	}
	writeJSON(w, http.StatusOK, ScenarioDTO{ID: h.currentScenario, Name: h.currentScenario})
}

// LoadScenario resets the database and loads a predefined scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ScenarioID string `json:"scenario_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()
	if err := h.Repo.Reset(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}

	var err error
	switch req.ScenarioID {
	case "semaine-type":
		_, err = loadTypicalWeek(ctx, h.Repo)
	case "remplacements":
		err = loadReplacementsWeek(ctx, h.Repo)
	case "semaine-ferie":
		err = loadHolidayWeek(ctx, h.Repo)
	default:
		writeError(w, http.StatusBadRequest, "Unknown scenario: "+req.ScenarioID, nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}

	h.currentScenario = req.ScenarioID
	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "loaded",
		"scenario_id": req.ScenarioID,
	})
}

// =============================================================================
// SCENARIO LOADERS
// =============================================================================

// demoWeek holds what the base loader created, so the other scenarios
// can build their day-scoped variations on top.
type demoWeek struct {
	dates      []string
	drivers    []planning.Employee
	circuit204 planning.Assignment
}

// loadTypicalWeek seeds schools, drivers and three circuit assignments
// covering the current school year.
func loadTypicalWeek(ctx context.Context, repo planning.Repository) (*demoWeek, error) {
	dates, err := planning.WeekDates("")
	if err != nil {
		return nil, err
	}

	parc := planning.School{ID: uuid.NewString(), Name: "École du Parc", Color: "#e74c3c", CreatedAt: now()}
	riviere := planning.School{ID: uuid.NewString(), Name: "École de la Rivière", Color: "#3498db", CreatedAt: now()}
	for _, s := range []planning.School{parc, riviere} {
		if err := repo.CreateSchool(ctx, s); err != nil {
			return nil, err
		}
	}

	drivers := []planning.Employee{
		{ID: uuid.NewString(), Name: "Eric Tremblay", HireDate: "2018-08-20", Berline: "12", CreatedAt: now()},
		{ID: uuid.NewString(), Name: "France Gagnon", HireDate: "2020-01-06", Berline: "7", CreatedAt: now()},
		{ID: uuid.NewString(), Name: "Michel Bouchard", HireDate: "2015-09-01", CreatedAt: now()},
	}
	for _, d := range drivers {
		if err := repo.CreateEmployee(ctx, d); err != nil {
			return nil, err
		}
	}

	// One school year around the current week, so the circuits cover
	// whatever week the board opens on.
	year, _ := strconv.Atoi(dates[0][:4])
	yearStart := strconv.Itoa(year-1) + "-08-25"
	yearEnd := strconv.Itoa(year+1) + "-06-19"

	mk := func(circuit string, driver planning.Employee, school planning.School, amStart, amEnd, pmStart, pmEnd string) planning.Assignment {
		return planning.Assignment{
			ID:            uuid.NewString(),
			CircuitNumber: circuit,
			EmployeeID:    driver.ID,
			EmployeeName:  driver.Name,
			StartDate:     yearStart,
			EndDate:       yearEnd,
			CreatedAt:     now(),
			Shifts: []planning.Shift{
				{ID: uuid.NewString(), Name: "AM", Blocks: []planning.Block{{
					ID: uuid.NewString(), SchoolID: school.ID, SchoolName: school.Name,
					SchoolColor: school.Color, StartTime: amStart, EndTime: amEnd,
					HLPBefore: 10, HLPAfter: 5,
				}}},
				{ID: uuid.NewString(), Name: "PM", Blocks: []planning.Block{{
					ID: uuid.NewString(), SchoolID: school.ID, SchoolName: school.Name,
					SchoolColor: school.Color, StartTime: pmStart, EndTime: pmEnd,
					HLPBefore: 10, HLPAfter: 5,
				}}},
			},
		}
	}

	a110 := mk("110", drivers[2], parc, "07:00", "08:00", "14:45", "15:45")
	a204 := mk("204", drivers[0], parc, "07:30", "08:15", "15:00", "15:50")
	a301 := mk("301", drivers[1], riviere, "07:45", "08:30", "15:15", "16:05")
	for _, a := range []planning.Assignment{a110, a204, a301} {
		if err := repo.CreateAssignment(ctx, a); err != nil {
			return nil, err
		}
	}

	return &demoWeek{dates: dates, drivers: drivers, circuit204: a204}, nil
}

// loadReplacementsWeek builds on the typical week with uncovered work:
// an absent driver, a shift reassigned to nobody, and a task with no
// driver at all.
func loadReplacementsWeek(ctx context.Context, repo planning.Repository) error {
	week, err := loadTypicalWeek(ctx, repo)
	if err != nil {
		return err
	}

	absent := week.drivers[1]
	absence := planning.Absence{
		ID: uuid.NewString(), EmployeeID: absent.ID, EmployeeName: absent.Name,
		StartDate: week.dates[1], EndDate: week.dates[2],
		Reason: "Maladie", CreatedAt: now(),
	}
	if err := repo.CreateAbsence(ctx, absence); err != nil {
		return err
	}

	vacated := planning.TemporaryReassignment{
		ID: uuid.NewString(), Date: week.dates[3],
		AssignmentID:       week.circuit204.ID,
		ShiftID:            week.circuit204.Shifts[0].ID,
		OriginalEmployeeID: week.circuit204.EmployeeID,
		CreatedAt:          now(),
	}
	if err := repo.CreateReassignment(ctx, vacated); err != nil {
		return err
	}

	task := planning.TemporaryTask{
		ID: uuid.NewString(), Name: "Sortie au musée", Date: week.dates[2],
		StartTime: "09:30", EndTime: "11:30", CreatedAt: now(),
	}
	return repo.CreateTemporaryTask(ctx, task)
}

// loadHolidayWeek builds on the typical week with a Friday holiday and
// a dispatcher whose admin shift survives it.
func loadHolidayWeek(ctx context.Context, repo planning.Repository) error {
	week, err := loadTypicalWeek(ctx, repo)
	if err != nil {
		return err
	}

	holiday := planning.Holiday{
		ID: uuid.NewString(), Name: "Journée pédagogique", Date: week.dates[4],
		Type: planning.HolidayConge, CreatedAt: now(),
	}
	if err := repo.CreateHoliday(ctx, holiday); err != nil {
		return err
	}

	dispatcher := planning.Employee{
		ID: uuid.NewString(), Name: "Chantal Lachapelle", HireDate: "2012-03-12", CreatedAt: now(),
	}
	if err := repo.CreateEmployee(ctx, dispatcher); err != nil {
		return err
	}
	office := planning.Assignment{
		ID:            uuid.NewString(),
		CircuitNumber: "BUR",
		EmployeeID:    dispatcher.ID,
		EmployeeName:  dispatcher.Name,
		StartDate:     week.dates[0],
		EndDate:       week.dates[4],
		CreatedAt:     now(),
		Shifts: []planning.Shift{
			{ID: uuid.NewString(), Name: "ADMIN", IsAdmin: true},
		},
	}
	return repo.CreateAssignment(ctx, office)
}
