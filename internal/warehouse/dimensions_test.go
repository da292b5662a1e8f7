package warehouse

import (
	"context"
	"strings"
	"testing"

	"github.com/fmcglabs/warehousegen/internal/datagen"
	"github.com/fmcglabs/warehousegen/internal/geo"
	"github.com/fmcglabs/warehousegen/internal/store"
)

func newDimGen(seed uint64) *DimensionGenerator {
	f := datagen.NewFakerWithSeed(seed)
	return NewDimensionGenerator(f, NewAllocator(store.NewMemStore(), 1<<62))
}

func TestProducts(t *testing.T) {
	ctx := context.Background()
	g := newDimGen(7)
	founding := day(2015, 1, 1)
	asOf := day(2025, 6, 1)

	products, err := g.Products(ctx, 400, founding, asOf)
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	if len(products) != 400 {
		t.Fatalf("Got %d products, want 400", len(products))
	}

	statusCount := make(map[string]int)
	for _, p := range products {
		if p.Key < 1 {
			t.Fatalf("Product key %d not positive", p.Key)
		}
		if !strings.HasPrefix(p.ID, "P") {
			t.Errorf("Product ID %s lacks prefix", p.ID)
		}
		if p.RetailPrice <= p.WholesalePrice {
			t.Errorf("Retail %v not above wholesale %v", p.RetailPrice, p.WholesalePrice)
		}
		if p.CreatedDate != nil &&
			(p.CreatedDate.Before(founding) || p.CreatedDate.After(asOf)) {
			t.Errorf("Created date %v outside [%v, %v]", p.CreatedDate, founding, asOf)
		}
		statusCount[p.Status]++
	}

	// The status mix is 85/10/5; allow generous sampling slack.
	if active := statusCount["Active"]; active < 300 {
		t.Errorf("Only %d of 400 products Active", active)
	}
	if statusCount["Discontinued"] == 0 || statusCount["Seasonal"] == 0 {
		t.Errorf("Status mix missing minority statuses: %v", statusCount)
	}
}

func TestEmployees(t *testing.T) {
	ctx := context.Background()
	g := newDimGen(7)
	founding := day(2015, 1, 1)
	asOf := day(2025, 6, 1)

	employees, err := g.Employees(ctx, 50, 80, founding, asOf)
	if err != nil {
		t.Fatalf("Employees failed: %v", err)
	}
	if len(employees) != 80 {
		t.Fatalf("Got %d employees, want 80", len(employees))
	}

	var active, terminated int
	for _, e := range employees {
		if e.HireDate.Before(founding) || e.HireDate.After(asOf) {
			t.Errorf("Hire date %v outside [%v, %v]", e.HireDate, founding, asOf)
		}
		switch e.EmploymentStatus {
		case "Active":
			active++
			if e.TerminationDate != nil {
				t.Error("Active employee has a termination date")
			}
		case "Terminated":
			terminated++
			if e.TerminationDate == nil {
				t.Error("Terminated employee has no termination date")
			} else if e.TerminationDate.Before(e.HireDate) {
				t.Errorf("Termination %v before hire %v", e.TerminationDate, e.HireDate)
			}
		default:
			t.Errorf("Unexpected employment status %s", e.EmploymentStatus)
		}

		if jobSpecs[e.Department] == nil {
			t.Errorf("Unknown department %s", e.Department)
		}
		var inLadder bool
		for _, job := range jobSpecs[e.Department] {
			if job.Title == e.Position {
				inLadder = true
				if e.MonthlySalary < job.SalaryMin || e.MonthlySalary > job.SalaryMax {
					t.Errorf("Salary %d outside band [%d, %d] for %s",
						e.MonthlySalary, job.SalaryMin, job.SalaryMax, e.Position)
				}
			}
		}
		if !inLadder {
			t.Errorf("Position %s not in %s ladder", e.Position, e.Department)
		}
		if !strings.HasSuffix(e.Email, "@fmcglabs.ph") {
			t.Errorf("Corporate email %s has wrong domain", e.Email)
		}
	}
	if active != 50 || terminated != 30 {
		t.Errorf("Active/terminated = %d/%d, want 50/30", active, terminated)
	}
}

func TestRetailers(t *testing.T) {
	ctx := context.Background()
	g := newDimGen(7)

	retailers, err := g.Retailers(ctx, 200)
	if err != nil {
		t.Fatalf("Retailers failed: %v", err)
	}

	validTypes := make(map[string]bool)
	for _, rt := range retailerTypes {
		validTypes[rt] = true
	}
	typeCount := make(map[string]int)
	for _, r := range retailers {
		if !validTypes[r.Type] {
			t.Errorf("Unknown retailer type %s", r.Type)
		}
		typeCount[r.Type]++

		var known bool
		for _, c := range geo.CitiesFor(r.Region) {
			if c.Name == r.City && c.Province == r.Province {
				known = true
			}
		}
		if !known {
			t.Errorf("Retailer location %s/%s/%s not in catalog", r.Region, r.Province, r.City)
		}
	}
	// Sari-sari stores dominate the channel mix.
	if typeCount["Sari-sari Store"] < typeCount["Supermarket"] {
		t.Errorf("Channel mix inverted: %v", typeCount)
	}
}

func TestCampaigns(t *testing.T) {
	ctx := context.Background()
	g := newDimGen(7)
	founding := day(2015, 1, 1)
	asOf := day(2025, 6, 1)

	campaigns, err := g.Campaigns(ctx, 40, founding, asOf)
	if err != nil {
		t.Fatalf("Campaigns failed: %v", err)
	}
	for _, c := range campaigns {
		if c.StartDate.Before(founding) || c.EndDate.After(asOf) {
			t.Errorf("Campaign window [%v, %v] escapes [%v, %v]",
				c.StartDate, c.EndDate, founding, asOf)
		}
		if c.EndDate.Before(c.StartDate) {
			t.Errorf("Campaign ends %v before start %v", c.EndDate, c.StartDate)
		}
		if c.Budget <= 0 {
			t.Errorf("Campaign budget %v not positive", c.Budget)
		}
	}
}

func TestOrgDimensions(t *testing.T) {
	ctx := context.Background()
	g := newDimGen(7)

	departments, err := g.Departments(ctx)
	if err != nil {
		t.Fatalf("Departments failed: %v", err)
	}
	var totalShare float64
	for _, d := range departments {
		totalShare += d.HeadcountShare
	}
	if totalShare < 0.99 || totalShare > 1.01 {
		t.Errorf("Headcount shares sum to %v, want 1.0", totalShare)
	}

	jobs, err := g.Jobs(ctx, departments)
	if err != nil {
		t.Fatalf("Jobs failed: %v", err)
	}
	deptKeys := make(map[int64]bool)
	for _, d := range departments {
		deptKeys[d.Key] = true
	}
	seenTitles := make(map[string]bool)
	for _, j := range jobs {
		if !deptKeys[j.DepartmentKey] {
			t.Errorf("Job %s references unknown department key %d", j.Title, j.DepartmentKey)
		}
		if seenTitles[j.Title] {
			t.Errorf("Duplicate job title %s", j.Title)
		}
		seenTitles[j.Title] = true
		if j.SalaryMax < j.SalaryMin {
			t.Errorf("Job %s salary band inverted", j.Title)
		}
	}

	locations, err := g.Locations(ctx)
	if err != nil {
		t.Fatalf("Locations failed: %v", err)
	}
	if len(locations) != len(geo.AllCities()) {
		t.Errorf("Got %d locations, want %d", len(locations), len(geo.AllCities()))
	}

	banks, err := g.Banks(ctx)
	if err != nil || len(banks) != len(bankNames) {
		t.Errorf("Banks = %d rows, %v", len(banks), err)
	}
	insurers, err := g.Insurers(ctx)
	if err != nil || len(insurers) != len(insuranceProviders) {
		t.Errorf("Insurers = %d rows, %v", len(insurers), err)
	}
}
