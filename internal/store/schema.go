//-------------------------------------------------------------------------
//
// FMCG Warehouse Generator
//
// Copyright (c) 2025 - 2026, FMCG Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package store

// Destination table names.
const (
	DimProducts    = "dim_products"
	DimEmployees   = "dim_employees"
	DimRetailers   = "dim_retailers"
	DimCampaigns   = "dim_campaigns"
	DimLocations   = "dim_locations"
	DimDepartments = "dim_departments"
	DimJobs        = "dim_jobs"
	DimBanks       = "dim_banks"
	DimInsurance   = "dim_insurance"

	FactSales          = "fact_sales"
	FactEmployeeWages  = "fact_employee_wages"
	FactInventory      = "fact_inventory"
	FactOperatingCosts = "fact_operating_costs"
	FactMarketingCosts = "fact_marketing_costs"
)

var schemas = map[string]Schema{
	DimProducts: {
		{Name: "product_key", Type: TypeBigint, Required: true},
		{Name: "product_id", Type: TypeText, Required: true},
		{Name: "product_name", Type: TypeText, Required: true},
		{Name: "category", Type: TypeText, Required: true},
		{Name: "subcategory", Type: TypeText, Required: true},
		{Name: "brand", Type: TypeText, Required: true},
		{Name: "wholesale_price", Type: TypeFloat, Required: true},
		{Name: "retail_price", Type: TypeFloat, Required: true},
		{Name: "status", Type: TypeText, Required: true},
		{Name: "created_date", Type: TypeDate, Required: false},
	},
	DimEmployees: {
		{Name: "employee_key", Type: TypeBigint, Required: true},
		{Name: "employee_id", Type: TypeText, Required: true},
		{Name: "full_name", Type: TypeText, Required: true},
		{Name: "department", Type: TypeText, Required: true},
		{Name: "position", Type: TypeText, Required: true},
		{Name: "employment_status", Type: TypeText, Required: true},
		{Name: "hire_date", Type: TypeDate, Required: true},
		{Name: "termination_date", Type: TypeDate, Required: false},
		{Name: "gender", Type: TypeText, Required: true},
		{Name: "birth_date", Type: TypeDate, Required: true},
		{Name: "age", Type: TypeInt, Required: true},
		{Name: "work_setup", Type: TypeText, Required: true},
		{Name: "work_type", Type: TypeText, Required: true},
		{Name: "monthly_salary", Type: TypeInt, Required: true},
		{Name: "address_street", Type: TypeText, Required: true},
		{Name: "address_city", Type: TypeText, Required: true},
		{Name: "address_province", Type: TypeText, Required: true},
		{Name: "address_region", Type: TypeText, Required: true},
		{Name: "address_postal_code", Type: TypeText, Required: true},
		{Name: "address_country", Type: TypeText, Required: true},
		{Name: "phone", Type: TypeText, Required: true},
		{Name: "email", Type: TypeText, Required: true},
		{Name: "personal_email", Type: TypeText, Required: true},
		{Name: "tin_number", Type: TypeText, Required: true},
		{Name: "sss_number", Type: TypeText, Required: true},
		{Name: "philhealth_number", Type: TypeText, Required: true},
		{Name: "pagibig_number", Type: TypeText, Required: true},
		{Name: "blood_type", Type: TypeText, Required: true},
		{Name: "bank_name", Type: TypeText, Required: true},
		{Name: "account_number", Type: TypeText, Required: true},
		{Name: "account_name", Type: TypeText, Required: true},
		{Name: "performance_rating", Type: TypeInt, Required: true},
		{Name: "last_review_date", Type: TypeDate, Required: true},
		{Name: "training_completed", Type: TypeText, Required: false},
		{Name: "skills", Type: TypeText, Required: true},
		{Name: "health_insurance_provider", Type: TypeText, Required: true},
		{Name: "benefit_enrollment_date", Type: TypeDate, Required: true},
		{Name: "years_of_service", Type: TypeInt, Required: true},
		{Name: "attendance_rate", Type: TypeFloat, Required: true},
		{Name: "overtime_hours_monthly", Type: TypeInt, Required: true},
		{Name: "engagement_score", Type: TypeInt, Required: true},
		{Name: "satisfaction_index", Type: TypeInt, Required: true},
		{Name: "vacation_leave_balance", Type: TypeInt, Required: true},
		{Name: "sick_leave_balance", Type: TypeInt, Required: true},
		{Name: "personal_leave_balance", Type: TypeInt, Required: true},
		{Name: "emergency_contact_name", Type: TypeText, Required: true},
		{Name: "emergency_contact_relation", Type: TypeText, Required: true},
		{Name: "emergency_contact_phone", Type: TypeText, Required: true},
	},
	DimRetailers: {
		{Name: "retailer_key", Type: TypeBigint, Required: true},
		{Name: "retailer_id", Type: TypeText, Required: true},
		{Name: "retailer_name", Type: TypeText, Required: true},
		{Name: "retailer_type", Type: TypeText, Required: true},
		{Name: "city", Type: TypeText, Required: true},
		{Name: "province", Type: TypeText, Required: true},
		{Name: "region", Type: TypeText, Required: true},
		{Name: "country", Type: TypeText, Required: true},
	},
	DimCampaigns: {
		{Name: "campaign_key", Type: TypeBigint, Required: true},
		{Name: "campaign_id", Type: TypeText, Required: true},
		{Name: "campaign_name", Type: TypeText, Required: true},
		{Name: "campaign_type", Type: TypeText, Required: true},
		{Name: "start_date", Type: TypeDate, Required: true},
		{Name: "end_date", Type: TypeDate, Required: true},
		{Name: "budget", Type: TypeFloat, Required: true},
		{Name: "currency", Type: TypeText, Required: true},
	},
	DimLocations: {
		{Name: "location_key", Type: TypeBigint, Required: true},
		{Name: "location_id", Type: TypeText, Required: true},
		{Name: "city", Type: TypeText, Required: true},
		{Name: "province", Type: TypeText, Required: true},
		{Name: "region", Type: TypeText, Required: true},
		{Name: "country", Type: TypeText, Required: true},
	},
	DimDepartments: {
		{Name: "department_key", Type: TypeBigint, Required: true},
		{Name: "department_id", Type: TypeText, Required: true},
		{Name: "department_name", Type: TypeText, Required: true},
		{Name: "headcount_share", Type: TypeFloat, Required: true},
	},
	DimJobs: {
		{Name: "job_key", Type: TypeBigint, Required: true},
		{Name: "job_id", Type: TypeText, Required: true},
		{Name: "job_title", Type: TypeText, Required: true},
		{Name: "department_key", Type: TypeBigint, Required: true},
		{Name: "job_level", Type: TypeText, Required: true},
		{Name: "base_salary_min", Type: TypeInt, Required: true},
		{Name: "base_salary_max", Type: TypeInt, Required: true},
	},
	DimBanks: {
		{Name: "bank_key", Type: TypeBigint, Required: true},
		{Name: "bank_id", Type: TypeText, Required: true},
		{Name: "bank_name", Type: TypeText, Required: true},
	},
	DimInsurance: {
		{Name: "insurance_key", Type: TypeBigint, Required: true},
		{Name: "insurance_id", Type: TypeText, Required: true},
		{Name: "provider_name", Type: TypeText, Required: true},
	},
	FactSales: {
		{Name: "sale_key", Type: TypeBigint, Required: true},
		{Name: "sale_date", Type: TypeDate, Required: true},
		{Name: "product_key", Type: TypeBigint, Required: true},
		{Name: "employee_key", Type: TypeBigint, Required: true},
		{Name: "retailer_key", Type: TypeBigint, Required: true},
		{Name: "campaign_key", Type: TypeBigint, Required: false},
		{Name: "case_quantity", Type: TypeInt, Required: true},
		{Name: "unit_price", Type: TypeFloat, Required: true},
		{Name: "discount_percent", Type: TypeFloat, Required: true},
		{Name: "tax_rate", Type: TypeFloat, Required: true},
		{Name: "total_amount", Type: TypeFloat, Required: true},
		{Name: "commission_amount", Type: TypeFloat, Required: true},
		{Name: "currency", Type: TypeText, Required: true},
		{Name: "payment_method", Type: TypeText, Required: true},
		{Name: "payment_status", Type: TypeText, Required: true},
		{Name: "delivery_status", Type: TypeText, Required: true},
		{Name: "expected_delivery_date", Type: TypeDate, Required: true},
		{Name: "actual_delivery_date", Type: TypeDate, Required: false},
	},
	FactEmployeeWages: {
		{Name: "wage_key", Type: TypeBigint, Required: true},
		{Name: "employee_key", Type: TypeBigint, Required: true},
		{Name: "job_key", Type: TypeBigint, Required: true},
		{Name: "effective_date", Type: TypeDate, Required: true},
		{Name: "job_title", Type: TypeText, Required: true},
		{Name: "monthly_salary", Type: TypeFloat, Required: true},
		{Name: "currency", Type: TypeText, Required: true},
	},
	FactInventory: {
		{Name: "inventory_key", Type: TypeBigint, Required: true},
		{Name: "inventory_date", Type: TypeDate, Required: true},
		{Name: "product_key", Type: TypeBigint, Required: true},
		{Name: "warehouse_location", Type: TypeText, Required: true},
		{Name: "cases_on_hand", Type: TypeInt, Required: true},
		{Name: "unit_cost", Type: TypeFloat, Required: true},
		{Name: "currency", Type: TypeText, Required: true},
	},
	FactOperatingCosts: {
		{Name: "cost_key", Type: TypeBigint, Required: true},
		{Name: "cost_date", Type: TypeDate, Required: true},
		{Name: "category", Type: TypeText, Required: true},
		{Name: "cost_type", Type: TypeText, Required: true},
		{Name: "amount", Type: TypeFloat, Required: true},
		{Name: "currency", Type: TypeText, Required: true},
	},
	FactMarketingCosts: {
		{Name: "marketing_cost_key", Type: TypeBigint, Required: true},
		{Name: "cost_date", Type: TypeDate, Required: true},
		{Name: "campaign_key", Type: TypeBigint, Required: false},
		{Name: "campaign_id", Type: TypeText, Required: false},
		{Name: "campaign_type", Type: TypeText, Required: false},
		{Name: "cost_category", Type: TypeText, Required: true},
		{Name: "amount", Type: TypeFloat, Required: true},
		{Name: "currency", Type: TypeText, Required: true},
	},
}

// SchemaFor returns the registered schema for a destination table.
func SchemaFor(table string) (Schema, bool) {
	s, ok := schemas[table]
	return s, ok
}

// Tables returns all registered destination table names, dimensions first.
func Tables() []string {
	return []string{
		DimLocations, DimDepartments, DimJobs, DimBanks, DimInsurance,
		DimProducts, DimEmployees, DimRetailers, DimCampaigns,
		FactSales, FactEmployeeWages, FactInventory,
		FactOperatingCosts, FactMarketingCosts,
	}
}
