//-------------------------------------------------------------------------
//
// FMCG Warehouse Generator
//
// Copyright (c) 2025 - 2026, FMCG Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fmcglabs/warehousegen/internal/datagen"
	"github.com/fmcglabs/warehousegen/internal/geo"
	"github.com/fmcglabs/warehousegen/internal/store"
)

// DimensionGenerator builds dimension rows. All methods allocate surrogate
// keys through the shared allocator, so generated keys continue any
// persisted sequence.
type DimensionGenerator struct {
	f     *datagen.Faker
	alloc *Allocator
}

// NewDimensionGenerator creates a dimension generator.
func NewDimensionGenerator(f *datagen.Faker, alloc *Allocator) *DimensionGenerator {
	return &DimensionGenerator{f: f, alloc: alloc}
}

// Locations builds one row per catalog city.
func (g *DimensionGenerator) Locations(ctx context.Context) ([]LocationRow, error) {
	cities := geo.AllCities()
	rows := make([]LocationRow, 0, len(cities))
	for _, city := range cities {
		key, err := g.alloc.NextKey(ctx, store.DimLocations, "location_key")
		if err != nil {
			return nil, err
		}
		rows = append(rows, LocationRow{
			Key:      key,
			ID:       FormatID(store.DimLocations, key),
			City:     city.Name,
			Province: city.Province,
			Region:   city.Region,
			Country:  "Philippines",
		})
	}
	return rows, nil
}

// Departments builds the org structure rows.
func (g *DimensionGenerator) Departments(ctx context.Context) ([]DepartmentRow, error) {
	rows := make([]DepartmentRow, 0, len(departmentSpecs))
	for _, spec := range departmentSpecs {
		key, err := g.alloc.NextKey(ctx, store.DimDepartments, "department_key")
		if err != nil {
			return nil, err
		}
		rows = append(rows, DepartmentRow{
			Key:            key,
			ID:             FormatID(store.DimDepartments, key),
			Name:           spec.Name,
			HeadcountShare: spec.Share,
		})
	}
	return rows, nil
}

// Jobs builds the job ladder for every department.
func (g *DimensionGenerator) Jobs(ctx context.Context, departments []DepartmentRow) ([]JobRow, error) {
	var rows []JobRow
	for _, dept := range departments {
		for _, spec := range jobSpecs[dept.Name] {
			key, err := g.alloc.NextKey(ctx, store.DimJobs, "job_key")
			if err != nil {
				return nil, err
			}
			rows = append(rows, JobRow{
				Key:           key,
				ID:            FormatID(store.DimJobs, key),
				Title:         spec.Title,
				DepartmentKey: dept.Key,
				Level:         spec.Level,
				SalaryMin:     spec.SalaryMin,
				SalaryMax:     spec.SalaryMax,
			})
		}
	}
	return rows, nil
}

// Banks builds the payroll bank rows.
func (g *DimensionGenerator) Banks(ctx context.Context) ([]BankRow, error) {
	rows := make([]BankRow, 0, len(bankNames))
	for _, name := range bankNames {
		key, err := g.alloc.NextKey(ctx, store.DimBanks, "bank_key")
		if err != nil {
			return nil, err
		}
		rows = append(rows, BankRow{Key: key, ID: FormatID(store.DimBanks, key), Name: name})
	}
	return rows, nil
}

// Insurers builds the HMO provider rows.
func (g *DimensionGenerator) Insurers(ctx context.Context) ([]InsuranceRow, error) {
	rows := make([]InsuranceRow, 0, len(insuranceProviders))
	for _, name := range insuranceProviders {
		key, err := g.alloc.NextKey(ctx, store.DimInsurance, "insurance_key")
		if err != nil {
			return nil, err
		}
		rows = append(rows, InsuranceRow{Key: key, ID: FormatID(store.DimInsurance, key), Name: name})
	}
	return rows, nil
}

var packSizes = []string{"Case of 24", "Case of 48", "Case of 72", "Case of 144"}
var productVariants = []string{
	"Original", "Classic", "Extra", "Max", "Lite", "Family Pack",
	"Sulit Pack", "Jumbo", "Mini", "Twin Pack",
}

// Products builds n product rows. Creation dates fall inside
// [founding, asOf]; a small share carries no creation date and is treated
// as available since founding.
func (g *DimensionGenerator) Products(ctx context.Context, n int, founding, asOf time.Time) ([]ProductRow, error) {
	rows := make([]ProductRow, 0, n)
	for i := 0; i < n; i++ {
		key, err := g.alloc.NextKey(ctx, store.DimProducts, "product_key")
		if err != nil {
			return nil, err
		}

		line := datagen.Choose(g.f, productLines)
		brand := datagen.Choose(g.f, line.Brands)
		wholesale := round2(g.f.Float64(line.MinWholesale, line.MaxWholesale))
		retail := round2(wholesale * g.f.Float64(minRetailMarkup, maxRetailMarkup))

		var created *time.Time
		if !g.f.Chance(0.10) {
			t := dateOnly(g.f.DateRange(founding, asOf))
			created = &t
		}

		rows = append(rows, ProductRow{
			Key: key,
			ID:  FormatID(store.DimProducts, key),
			Name: fmt.Sprintf("%s %s %s, %s", brand, line.Subcategory,
				datagen.Choose(g.f, productVariants), datagen.Choose(g.f, packSizes)),
			Category:       line.Category,
			Subcategory:    line.Subcategory,
			Brand:          brand,
			WholesalePrice: wholesale,
			RetailPrice:    retail,
			Status:         datagen.ChooseWeighted(g.f, productStatuses, productStatusWeights),
			CreatedDate:    created,
		})
	}
	return rows, nil
}

// Employees builds the workforce: active head count plus enough terminated
// alumni to reach total, reflecting accumulated turnover.
func (g *DimensionGenerator) Employees(ctx context.Context, active, total int, founding, asOf time.Time) ([]EmployeeRow, error) {
	if total < active {
		total = active
	}
	rows := make([]EmployeeRow, 0, total)
	for i := 0; i < total; i++ {
		key, err := g.alloc.NextKey(ctx, store.DimEmployees, "employee_key")
		if err != nil {
			return nil, err
		}
		terminated := i >= active
		rows = append(rows, g.employee(key, founding, asOf, terminated))
	}
	return rows, nil
}

func (g *DimensionGenerator) employee(key int64, founding, asOf time.Time, terminated bool) EmployeeRow {
	deptNames := make([]string, len(departmentSpecs))
	deptWeights := make([]int, len(departmentSpecs))
	for i, spec := range departmentSpecs {
		deptNames[i] = spec.Name
		deptWeights[i] = int(spec.Share * 100)
	}
	dept := datagen.ChooseWeighted(g.f, deptNames, deptWeights)
	job := datagen.Choose(g.f, jobSpecs[dept])

	hire := dateOnly(g.f.DateRange(founding, asOf))
	var termination *time.Time
	status := "Active"
	serviceEnd := asOf
	if terminated {
		// Tenure between three months and five years, capped at asOf.
		tenure := g.f.Int(90, 5*365)
		end := hire.AddDate(0, 0, tenure)
		if end.After(asOf) {
			end = asOf
		}
		termination = &end
		status = "Terminated"
		serviceEnd = end
	}

	age := g.f.Int(21, 60)
	birth := dateOnly(asOf.AddDate(-age, 0, -g.f.Int(0, 364)))

	first := g.f.FirstName()
	last := g.f.LastName()
	fullName := first + " " + last
	salary := g.f.Int(job.SalaryMin, job.SalaryMax)

	lastReview := dateOnly(g.f.DateRange(serviceEnd.AddDate(-1, 0, 0), serviceEnd))
	if lastReview.Before(hire) {
		lastReview = hire
	}

	addr := geo.RandomAddress(g.f)
	years := int(serviceEnd.Sub(hire).Hours() / 24 / 365)

	return EmployeeRow{
		Key:              key,
		ID:               FormatID(store.DimEmployees, key),
		FullName:         fullName,
		Department:       dept,
		Position:         job.Title,
		EmploymentStatus: status,
		HireDate:         hire,
		TerminationDate:  termination,
		Gender:           datagen.Choose(g.f, genders),
		BirthDate:        birth,
		Age:              age,
		WorkSetup:        datagen.ChooseWeighted(g.f, workSetups, workSetupWeights),
		WorkType:         datagen.ChooseWeighted(g.f, workTypes, workTypeWeights),
		MonthlySalary:    salary,
		Street:           g.f.Street(),
		City:             addr.City,
		Province:         addr.Province,
		Region:           addr.Region,
		PostalCode:       g.f.Zip(),
		Country:          "Philippines",
		Phone:            "+63 9" + g.f.Digits(9),
		Email:            corporateEmail(first, last),
		PersonalEmail:    g.f.Email(),
		TIN:              fmt.Sprintf("%s-%s-%s", g.f.Digits(3), g.f.Digits(3), g.f.Digits(3)),
		SSS:              fmt.Sprintf("%s-%s-%s", g.f.Digits(2), g.f.Digits(7), g.f.Digits(1)),
		PhilHealth:       fmt.Sprintf("%s-%s-%s", g.f.Digits(2), g.f.Digits(9), g.f.Digits(1)),
		PagIbig:          fmt.Sprintf("%s-%s-%s", g.f.Digits(4), g.f.Digits(4), g.f.Digits(4)),
		BloodType:        datagen.ChooseWeighted(g.f, bloodTypes, bloodTypeWeights),
		BankName:         datagen.Choose(g.f, bankNames),
		AccountNumber:    g.f.Digits(12),
		AccountName:      fullName,
		Performance:      g.f.Int(1, 5),
		LastReviewDate:   lastReview,
		Training:         strings.Join(datagen.Sample(g.f, trainingCatalog, g.f.Int(0, 3)), ", "),
		Skills:           strings.Join(datagen.Sample(g.f, skillCatalog, g.f.Int(2, 5)), ", "),
		InsuranceName:    datagen.Choose(g.f, insuranceProviders),
		BenefitDate:      hire.AddDate(0, 0, 30),
		YearsOfService:   years,
		AttendanceRate:   round2(g.f.Float64(0.85, 1.0)),
		OvertimeHours:    g.f.Int(0, 32),
		Engagement:       g.f.Int(55, 100),
		Satisfaction:     g.f.Int(50, 100),
		VacationBalance:  g.f.Int(0, 15),
		SickBalance:      g.f.Int(0, 15),
		PersonalBalance:  g.f.Int(0, 5),
		EmergencyName:    g.f.Name(),
		EmergencyRel:     datagen.Choose(g.f, emergencyRelations),
		EmergencyPhone:   "+63 9" + g.f.Digits(9),
	}
}

// Retailers builds n retail outlet rows across the channel mix.
func (g *DimensionGenerator) Retailers(ctx context.Context, n int) ([]RetailerRow, error) {
	rows := make([]RetailerRow, 0, n)
	for i := 0; i < n; i++ {
		key, err := g.alloc.NextKey(ctx, store.DimRetailers, "retailer_key")
		if err != nil {
			return nil, err
		}

		retailerType := datagen.ChooseWeighted(g.f, retailerTypes, retailerTypeWeights)
		addr := geo.RandomAddress(g.f)

		var name string
		switch retailerType {
		case "Sari-sari Store":
			name = fmt.Sprintf("%s's Store", g.f.FirstName())
		case "Wholesaler":
			name = fmt.Sprintf("%s Trading", g.f.LastName())
		default:
			name = fmt.Sprintf("%s %s", g.f.Company(), retailerType)
		}

		rows = append(rows, RetailerRow{
			Key:      key,
			ID:       FormatID(store.DimRetailers, key),
			Name:     datagen.Truncate(name, 80),
			Type:     retailerType,
			City:     addr.City,
			Province: addr.Province,
			Region:   addr.Region,
			Country:  "Philippines",
		})
	}
	return rows, nil
}

// Campaigns builds n marketing campaign rows with windows inside
// [founding, asOf].
func (g *DimensionGenerator) Campaigns(ctx context.Context, n int, founding, asOf time.Time) ([]CampaignRow, error) {
	rows := make([]CampaignRow, 0, n)
	for i := 0; i < n; i++ {
		key, err := g.alloc.NextKey(ctx, store.DimCampaigns, "campaign_key")
		if err != nil {
			return nil, err
		}

		campaignType := datagen.Choose(g.f, campaignTypes)
		line := datagen.Choose(g.f, productLines)
		brand := datagen.Choose(g.f, line.Brands)

		start := dateOnly(g.f.DateRange(founding, asOf))
		end := start.AddDate(0, g.f.Int(1, 6), 0)
		if end.After(asOf) {
			end = asOf
		}

		rows = append(rows, CampaignRow{
			Key:       key,
			ID:        FormatID(store.DimCampaigns, key),
			Name:      fmt.Sprintf("%s %s %d", brand, campaignType, start.Year()),
			Type:      campaignType,
			StartDate: start,
			EndDate:   end,
			Budget:    round2(g.f.Float64(250_000, 5_000_000)),
		})
	}
	return rows, nil
}

func corporateEmail(first, last string) string {
	return strings.ToLower(first) + "." + strings.ToLower(last) + "@fmcglabs.ph"
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
