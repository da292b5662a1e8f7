//-------------------------------------------------------------------------
//
// FMCG Warehouse Generator
//
// Copyright (c) 2025 - 2026, FMCG Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

// Static reference data for the generated FMCG business: product lines,
// org structure, retail channel mix, and cost structure.

type productLine struct {
	Category     string
	Subcategory  string
	Brands       []string
	MinWholesale float64
	MaxWholesale float64
	// Commission paid to the selling employee, as a share of net amount.
	CommissionRate float64
}

var productLines = []productLine{
	{"Beverages", "Powdered Drinks", []string{"SunSip", "TropiMix", "Kape Uno"}, 180, 450, 0.030},
	{"Beverages", "Ready-to-Drink", []string{"SunSip", "AguaPura", "FizzBee"}, 220, 520, 0.030},
	{"Snacks", "Chips", []string{"Krunchy", "SaltiCo", "MaisPop"}, 150, 380, 0.035},
	{"Snacks", "Biscuits", []string{"Krunchy", "ButterBay", "ChocoLane"}, 140, 360, 0.035},
	{"Personal Care", "Hair Care", []string{"Silka Pro", "HerbaGlow", "FreshCrown"}, 260, 680, 0.040},
	{"Personal Care", "Oral Care", []string{"DentaShine", "FreshCrown"}, 240, 600, 0.040},
	{"Personal Care", "Bath & Body", []string{"Silka Pro", "HerbaGlow", "PureBar"}, 200, 560, 0.040},
	{"Household", "Laundry", []string{"LabaMax", "BreezeHome"}, 190, 500, 0.025},
	{"Household", "Cleaning", []string{"BreezeHome", "KlaroClean"}, 170, 460, 0.025},
	{"Food Staples", "Canned Goods", []string{"LutoRico", "SeaHarvest"}, 210, 540, 0.028},
	{"Food Staples", "Condiments", []string{"LutoRico", "SarapSauce"}, 160, 420, 0.028},
	{"Food Staples", "Instant Noodles", []string{"NudelHaus", "SarapSauce"}, 130, 340, 0.028},
}

// Retail markup applied to wholesale price.
const (
	minRetailMarkup = 1.15
	maxRetailMarkup = 1.45
)

var productStatuses = []string{"Active", "Discontinued", "Seasonal"}
var productStatusWeights = []int{85, 10, 5}

var retailerTypes = []string{
	"Sari-sari Store", "Convenience Store", "Grocery", "Supermarket", "Wholesaler",
}
var retailerTypeWeights = []int{45, 20, 15, 12, 8}

type departmentSpec struct {
	Name  string
	Share float64
}

var departmentSpecs = []departmentSpec{
	{"Sales", 0.24},
	{"Operations", 0.28},
	{"Logistics", 0.12},
	{"Marketing", 0.10},
	{"Finance", 0.09},
	{"Human Resources", 0.07},
	{"Information Technology", 0.06},
	{"Quality Assurance", 0.04},
}

type jobSpec struct {
	Title     string
	Level     string
	SalaryMin int
	SalaryMax int
}

// jobSpecs maps department name to its job ladder. Salary bands are
// monthly, in PHP.
var jobSpecs = map[string][]jobSpec{
	"Sales": {
		{"Sales Representative", "Junior", 18000, 26000},
		{"Account Executive", "Mid", 26000, 40000},
		{"Key Account Manager", "Senior", 45000, 70000},
		{"Regional Sales Manager", "Manager", 75000, 120000},
	},
	"Operations": {
		{"Production Operator", "Junior", 16000, 22000},
		{"Line Supervisor", "Mid", 25000, 38000},
		{"Plant Engineer", "Senior", 42000, 65000},
		{"Operations Manager", "Manager", 70000, 110000},
	},
	"Logistics": {
		{"Warehouse Associate", "Junior", 15000, 21000},
		{"Dispatch Coordinator", "Mid", 23000, 34000},
		{"Fleet Supervisor", "Senior", 38000, 58000},
		{"Logistics Manager", "Manager", 65000, 100000},
	},
	"Marketing": {
		{"Marketing Assistant", "Junior", 19000, 26000},
		{"Brand Associate", "Mid", 28000, 42000},
		{"Brand Manager", "Senior", 50000, 78000},
		{"Marketing Director", "Manager", 90000, 140000},
	},
	"Finance": {
		{"Accounting Clerk", "Junior", 18000, 25000},
		{"Financial Analyst", "Mid", 30000, 45000},
		{"Senior Accountant", "Senior", 48000, 70000},
		{"Finance Manager", "Manager", 80000, 125000},
	},
	"Human Resources": {
		{"HR Assistant", "Junior", 17000, 24000},
		{"HR Generalist", "Mid", 26000, 38000},
		{"HR Business Partner", "Senior", 45000, 68000},
		{"HR Manager", "Manager", 70000, 105000},
	},
	"Information Technology": {
		{"IT Support Specialist", "Junior", 22000, 32000},
		{"Systems Administrator", "Mid", 35000, 52000},
		{"Software Engineer", "Senior", 55000, 85000},
		{"IT Manager", "Manager", 90000, 135000},
	},
	"Quality Assurance": {
		{"QA Inspector", "Junior", 17000, 23000},
		{"QA Analyst", "Mid", 26000, 38000},
		{"QA Lead", "Senior", 42000, 62000},
		{"QA Manager", "Manager", 65000, 100000},
	},
}

var bankNames = []string{
	"BDO Unibank", "Bank of the Philippine Islands", "Metrobank",
	"Land Bank of the Philippines", "Security Bank", "UnionBank", "PNB",
}

var insuranceProviders = []string{
	"Maxicare", "Medicard", "Intellicare", "PhilCare", "Cocolife",
}

var campaignTypes = []string{
	"TV Commercial", "Radio Spot", "Digital Display", "Social Media",
	"In-store Promotion", "Sampling Event", "Billboard", "Trade Show",
}

var paymentMethods = []string{"Cash", "GCash", "Bank Transfer", "Credit Terms", "Check"}
var paymentMethodWeights = []int{38, 22, 18, 15, 7}

var paymentStatuses = []string{"Paid", "Pending", "Overdue"}
var paymentStatusWeights = []int{78, 16, 6}

var deliveryStatuses = []string{"Delivered", "In Transit", "Processing", "Cancelled"}
var deliveryStatusWeights = []int{80, 10, 7, 3}

// deliveryDays is the expected delivery lead time range per region.
var deliveryDays = map[string][2]int{
	"NCR":         {1, 3},
	"Region III":  {2, 4},
	"Region IV-A": {2, 4},
	"Region VI":   {4, 7},
	"Region VII":  {3, 6},
	"Region X":    {5, 9},
	"Region XI":   {5, 9},
}
var defaultDeliveryDays = [2]int{3, 7}

var warehouseLocations = []string{
	"Valenzuela DC", "Calamba DC", "Cebu DC", "Davao DC",
}

var workSetups = []string{"Onsite", "Hybrid", "Remote"}
var workSetupWeights = []int{70, 22, 8}

var workTypes = []string{"Regular", "Probationary", "Contractual"}
var workTypeWeights = []int{78, 12, 10}

var bloodTypes = []string{"O+", "A+", "B+", "AB+", "O-", "A-", "B-", "AB-"}
var bloodTypeWeights = []int{38, 24, 20, 6, 5, 4, 2, 1}

var genders = []string{"Male", "Female"}

var emergencyRelations = []string{"Spouse", "Parent", "Sibling", "Child", "Relative"}

var skillCatalog = []string{
	"Negotiation", "Route Planning", "Inventory Management", "Forecasting",
	"Merchandising", "Cold Calling", "Data Analysis", "Team Leadership",
	"Customer Service", "Warehouse Safety", "SAP", "Excel",
}

var trainingCatalog = []string{
	"Food Safety Basics", "Defensive Driving", "Leadership 101",
	"Occupational Safety", "Anti-Bribery Compliance", "First Aid",
}

type costCategory struct {
	Category string
	CostType string
	// Monthly base amount in PHP before inflation.
	MinAmount float64
	MaxAmount float64
}

// operatingCostCategories is the monthly cost structure of the business.
var operatingCostCategories = []costCategory{
	{"Warehouse Rent", "Fixed", 800000, 1200000},
	{"Office Rent", "Fixed", 350000, 500000},
	{"Electricity", "Variable", 420000, 700000},
	{"Water", "Variable", 60000, 110000},
	{"Internet & Telecom", "Fixed", 80000, 140000},
	{"Fleet Fuel", "Variable", 500000, 900000},
	{"Fleet Maintenance", "Variable", 180000, 350000},
	{"Vehicle Registration", "Fixed", 25000, 45000},
	{"Forklift Leasing", "Fixed", 90000, 140000},
	{"Equipment Maintenance", "Variable", 120000, 240000},
	{"Production Supplies", "Variable", 300000, 550000},
	{"Packaging Materials", "Variable", 650000, 1100000},
	{"Raw Material Freight", "Variable", 400000, 750000},
	{"Security Services", "Fixed", 140000, 200000},
	{"Janitorial Services", "Fixed", 80000, 120000},
	{"Pest Control", "Fixed", 20000, 35000},
	{"Waste Disposal", "Variable", 45000, 85000},
	{"Insurance Premiums", "Fixed", 220000, 320000},
	{"Permits & Licenses", "Fixed", 30000, 60000},
	{"Legal & Professional Fees", "Variable", 90000, 220000},
	{"Audit Fees", "Fixed", 60000, 100000},
	{"Payroll Processing", "Fixed", 40000, 70000},
	{"Recruitment", "Variable", 50000, 150000},
	{"Training & Development", "Variable", 70000, 180000},
	{"Employee Benefits", "Fixed", 380000, 550000},
	{"Uniforms & PPE", "Variable", 35000, 80000},
	{"Office Supplies", "Variable", 40000, 90000},
	{"IT Software Licenses", "Fixed", 150000, 250000},
	{"IT Hardware", "Variable", 80000, 250000},
	{"Cloud Hosting", "Fixed", 60000, 110000},
	{"Bank Charges", "Variable", 25000, 60000},
	{"Interest Expense", "Fixed", 180000, 280000},
	{"Taxes & Duties", "Variable", 300000, 600000},
	{"Quality Testing", "Variable", 90000, 170000},
	{"Cold Storage", "Variable", 200000, 380000},
	{"Third-party Logistics", "Variable", 450000, 850000},
	{"Travel & Lodging", "Variable", 120000, 300000},
	{"Meals & Representation", "Variable", 60000, 150000},
	{"Depreciation", "Fixed", 500000, 700000},
	{"Building Maintenance", "Variable", 110000, 240000},
	{"Generator Fuel", "Variable", 50000, 130000},
	{"Miscellaneous", "Variable", 30000, 100000},
}

// marketingOverheadCategories are marketing costs not tied to a campaign.
var marketingOverheadCategories = []costCategory{
	{"Agency Retainer", "Fixed", 180000, 260000},
	{"Market Research", "Variable", 90000, 220000},
	{"Creative Production", "Variable", 120000, 350000},
	{"Sponsorships", "Variable", 80000, 300000},
	{"Promo Materials", "Variable", 100000, 280000},
}
