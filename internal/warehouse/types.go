//-------------------------------------------------------------------------
//
// FMCG Warehouse Generator
//
// Copyright (c) 2025 - 2026, FMCG Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package warehouse implements the dimensional warehouse generators: the
// dimension and fact row builders, surrogate key allocation, the
// availability policy, and the run orchestrator.
package warehouse

import "time"

// Currency is the single currency all monetary values are denominated in.
const Currency = "PHP"

// Dated is a dimension row with a validity window. A nil bound means
// unbounded on that side.
type Dated interface {
	ValidFrom() *time.Time
	ValidTo() *time.Time
}

// ProductRow is one row of dim_products.
type ProductRow struct {
	Key            int64
	ID             string
	Name           string
	Category       string
	Subcategory    string
	Brand          string
	WholesalePrice float64
	RetailPrice    float64
	Status         string
	CreatedDate    *time.Time
}

func (r ProductRow) ValidFrom() *time.Time { return r.CreatedDate }
func (r ProductRow) ValidTo() *time.Time   { return nil }

func (r ProductRow) Values() []any {
	return []any{
		r.Key, r.ID, r.Name, r.Category, r.Subcategory, r.Brand,
		r.WholesalePrice, r.RetailPrice, r.Status, dateVal(r.CreatedDate),
	}
}

// EmployeeRow is one row of dim_employees.
type EmployeeRow struct {
	Key              int64
	ID               string
	FullName         string
	Department       string
	Position         string
	EmploymentStatus string
	HireDate         time.Time
	TerminationDate  *time.Time
	Gender           string
	BirthDate        time.Time
	Age              int
	WorkSetup        string
	WorkType         string
	MonthlySalary    int
	Street           string
	City             string
	Province         string
	Region           string
	PostalCode       string
	Country          string
	Phone            string
	Email            string
	PersonalEmail    string
	TIN              string
	SSS              string
	PhilHealth       string
	PagIbig          string
	BloodType        string
	BankName         string
	AccountNumber    string
	AccountName      string
	Performance      int
	LastReviewDate   time.Time
	Training         string
	Skills           string
	InsuranceName    string
	BenefitDate      time.Time
	YearsOfService   int
	AttendanceRate   float64
	OvertimeHours    int
	Engagement       int
	Satisfaction     int
	VacationBalance  int
	SickBalance      int
	PersonalBalance  int
	EmergencyName    string
	EmergencyRel     string
	EmergencyPhone   string
}

func (r EmployeeRow) ValidFrom() *time.Time { t := r.HireDate; return &t }
func (r EmployeeRow) ValidTo() *time.Time   { return r.TerminationDate }

func (r EmployeeRow) Values() []any {
	return []any{
		r.Key, r.ID, r.FullName, r.Department, r.Position, r.EmploymentStatus,
		r.HireDate, dateVal(r.TerminationDate), r.Gender, r.BirthDate, r.Age,
		r.WorkSetup, r.WorkType, r.MonthlySalary,
		r.Street, r.City, r.Province, r.Region, r.PostalCode, r.Country,
		r.Phone, r.Email, r.PersonalEmail,
		r.TIN, r.SSS, r.PhilHealth, r.PagIbig, r.BloodType,
		r.BankName, r.AccountNumber, r.AccountName,
		r.Performance, r.LastReviewDate, r.Training, r.Skills,
		r.InsuranceName, r.BenefitDate, r.YearsOfService, r.AttendanceRate,
		r.OvertimeHours, r.Engagement, r.Satisfaction,
		r.VacationBalance, r.SickBalance, r.PersonalBalance,
		r.EmergencyName, r.EmergencyRel, r.EmergencyPhone,
	}
}

// RetailerRow is one row of dim_retailers. Retailers have no validity
// window; they are always available.
type RetailerRow struct {
	Key      int64
	ID       string
	Name     string
	Type     string
	City     string
	Province string
	Region   string
	Country  string
}

func (r RetailerRow) ValidFrom() *time.Time { return nil }
func (r RetailerRow) ValidTo() *time.Time   { return nil }

func (r RetailerRow) Values() []any {
	return []any{r.Key, r.ID, r.Name, r.Type, r.City, r.Province, r.Region, r.Country}
}

// CampaignRow is one row of dim_campaigns.
type CampaignRow struct {
	Key       int64
	ID        string
	Name      string
	Type      string
	StartDate time.Time
	EndDate   time.Time
	Budget    float64
}

func (r CampaignRow) ValidFrom() *time.Time { t := r.StartDate; return &t }
func (r CampaignRow) ValidTo() *time.Time   { t := r.EndDate; return &t }

func (r CampaignRow) Values() []any {
	return []any{r.Key, r.ID, r.Name, r.Type, r.StartDate, r.EndDate, r.Budget, Currency}
}

// LocationRow is one row of dim_locations.
type LocationRow struct {
	Key      int64
	ID       string
	City     string
	Province string
	Region   string
	Country  string
}

func (r LocationRow) Values() []any {
	return []any{r.Key, r.ID, r.City, r.Province, r.Region, r.Country}
}

// DepartmentRow is one row of dim_departments.
type DepartmentRow struct {
	Key            int64
	ID             string
	Name           string
	HeadcountShare float64
}

func (r DepartmentRow) Values() []any {
	return []any{r.Key, r.ID, r.Name, r.HeadcountShare}
}

// JobRow is one row of dim_jobs.
type JobRow struct {
	Key           int64
	ID            string
	Title         string
	DepartmentKey int64
	Level         string
	SalaryMin     int
	SalaryMax     int
}

func (r JobRow) Values() []any {
	return []any{r.Key, r.ID, r.Title, r.DepartmentKey, r.Level, r.SalaryMin, r.SalaryMax}
}

// BankRow is one row of dim_banks.
type BankRow struct {
	Key  int64
	ID   string
	Name string
}

func (r BankRow) Values() []any { return []any{r.Key, r.ID, r.Name} }

// InsuranceRow is one row of dim_insurance.
type InsuranceRow struct {
	Key  int64
	ID   string
	Name string
}

func (r InsuranceRow) Values() []any { return []any{r.Key, r.ID, r.Name} }

// SaleRow is one row of fact_sales.
type SaleRow struct {
	Key              int64
	Date             time.Time
	ProductKey       int64
	EmployeeKey      int64
	RetailerKey      int64
	CampaignKey      *int64
	CaseQuantity     int
	UnitPrice        float64
	DiscountPercent  float64
	TaxRate          float64
	TotalAmount      float64
	CommissionAmount float64
	PaymentMethod    string
	PaymentStatus    string
	DeliveryStatus   string
	ExpectedDelivery time.Time
	ActualDelivery   *time.Time
}

func (r SaleRow) Values() []any {
	return []any{
		r.Key, r.Date, r.ProductKey, r.EmployeeKey, r.RetailerKey,
		keyVal(r.CampaignKey), r.CaseQuantity, r.UnitPrice,
		r.DiscountPercent, r.TaxRate, r.TotalAmount, r.CommissionAmount,
		Currency, r.PaymentMethod, r.PaymentStatus, r.DeliveryStatus,
		r.ExpectedDelivery, dateVal(r.ActualDelivery),
	}
}

// WageRow is one row of fact_employee_wages.
type WageRow struct {
	Key           int64
	EmployeeKey   int64
	JobKey        int64
	EffectiveDate time.Time
	JobTitle      string
	MonthlySalary float64
}

func (r WageRow) Values() []any {
	return []any{r.Key, r.EmployeeKey, r.JobKey, r.EffectiveDate, r.JobTitle, r.MonthlySalary, Currency}
}

// InventoryRow is one row of fact_inventory.
type InventoryRow struct {
	Key         int64
	Date        time.Time
	ProductKey  int64
	Warehouse   string
	CasesOnHand int
	UnitCost    float64
}

func (r InventoryRow) Values() []any {
	return []any{r.Key, r.Date, r.ProductKey, r.Warehouse, r.CasesOnHand, r.UnitCost, Currency}
}

// OperatingCostRow is one row of fact_operating_costs.
type OperatingCostRow struct {
	Key      int64
	Date     time.Time
	Category string
	CostType string
	Amount   float64
}

func (r OperatingCostRow) Values() []any {
	return []any{r.Key, r.Date, r.Category, r.CostType, r.Amount, Currency}
}

// MarketingCostRow is one row of fact_marketing_costs. Overhead rows have
// no associated campaign.
type MarketingCostRow struct {
	Key          int64
	Date         time.Time
	CampaignKey  *int64
	CampaignID   string
	CampaignType string
	Category     string
	Amount       float64
}

func (r MarketingCostRow) Values() []any {
	var id, typ any
	if r.CampaignID != "" {
		id = r.CampaignID
	}
	if r.CampaignType != "" {
		typ = r.CampaignType
	}
	return []any{
		r.Key, r.Date, keyVal(r.CampaignKey), id, typ,
		r.Category, r.Amount, Currency,
	}
}

func dateVal(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func keyVal(k *int64) any {
	if k == nil {
		return nil
	}
	return *k
}
