//-------------------------------------------------------------------------
//
// FMCG Warehouse Generator
//
// Copyright (c) 2025 - 2026, FMCG Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package geo provides the static Philippine geography catalog used to
// assign addresses to generated dimension rows. Regions map to provinces,
// provinces to cities.
package geo

import (
	"sort"

	"github.com/fmcglabs/warehousegen/internal/datagen"
)

// Address is a structured address within the catalog.
type Address struct {
	Region   string
	Province string
	City     string
}

// City is a catalog entry with its parent province and region.
type City struct {
	Name     string
	Province string
	Region   string
}

// catalog maps region -> province -> cities. National Capital Region and
// the two adjacent industrial regions carry most of the distribution
// network, mirroring where FMCG volume actually moves.
var catalog = map[string]map[string][]string{
	"NCR": {
		"Metro Manila": {
			"Manila", "Quezon City", "Makati", "Pasig", "Taguig",
			"Caloocan", "Parañaque", "Mandaluyong", "Marikina", "Pasay",
		},
	},
	"Region III": {
		"Bulacan":  {"Malolos", "Meycauayan", "San Jose del Monte"},
		"Pampanga": {"Angeles", "San Fernando", "Mabalacat"},
		"Bataan":   {"Balanga"},
		"Tarlac":   {"Tarlac City"},
	},
	"Region IV-A": {
		"Cavite":   {"Bacoor", "Dasmariñas", "Imus", "General Trias"},
		"Laguna":   {"Calamba", "Santa Rosa", "Biñan", "San Pablo"},
		"Batangas": {"Batangas City", "Lipa", "Tanauan"},
		"Rizal":    {"Antipolo", "Cainta"},
	},
	"Region VI": {
		"Iloilo":             {"Iloilo City", "Passi"},
		"Negros Occidental":  {"Bacolod", "Talisay"},
	},
	"Region VII": {
		"Cebu":   {"Cebu City", "Mandaue", "Lapu-Lapu", "Talisay City"},
		"Bohol":  {"Tagbilaran"},
	},
	"Region XI": {
		"Davao del Sur":   {"Davao City", "Digos"},
		"Davao del Norte": {"Tagum", "Panabo"},
	},
	"Region X": {
		"Misamis Oriental": {"Cagayan de Oro", "Gingoog"},
		"Bukidnon":         {"Malaybalay", "Valencia"},
	},
}

// regionWeights bias random location selection toward high-volume regions.
var regionWeights = map[string]int{
	"NCR":         35,
	"Region III":  15,
	"Region IV-A": 20,
	"Region VI":   7,
	"Region VII":  12,
	"Region X":    4,
	"Region XI":   7,
}

// Regions returns all region names in stable order.
func Regions() []string {
	regions := make([]string, 0, len(catalog))
	for r := range catalog {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

// ProvincesFor returns the provinces of a region in stable order, or nil
// for an unknown region.
func ProvincesFor(region string) []string {
	provinces, ok := catalog[region]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(provinces))
	for p := range provinces {
		names = append(names, p)
	}
	sort.Strings(names)
	return names
}

// CitiesFor returns every city of a region in stable order, or nil for an
// unknown region.
func CitiesFor(region string) []City {
	provinces, ok := catalog[region]
	if !ok {
		return nil
	}
	var cities []City
	for _, province := range ProvincesFor(region) {
		for _, city := range provinces[province] {
			cities = append(cities, City{Name: city, Province: province, Region: region})
		}
	}
	return cities
}

// AllCities returns the full catalog flattened in stable order.
func AllCities() []City {
	var cities []City
	for _, region := range Regions() {
		cities = append(cities, CitiesFor(region)...)
	}
	return cities
}

// RandomAddress picks a weighted random region and a uniform city within it.
func RandomAddress(f *datagen.Faker) Address {
	regions := Regions()
	weights := make([]int, len(regions))
	for i, r := range regions {
		w := regionWeights[r]
		if w == 0 {
			w = 1
		}
		weights[i] = w
	}
	region := datagen.ChooseWeighted(f, regions, weights)
	return RandomAddressIn(f, region)
}

// RandomAddressIn picks a uniform random city within the given region.
// Unknown regions fall back to the weighted national pick.
func RandomAddressIn(f *datagen.Faker, region string) Address {
	cities := CitiesFor(region)
	if len(cities) == 0 {
		return RandomAddress(f)
	}
	city := datagen.Choose(f, cities)
	return Address{Region: city.Region, Province: city.Province, City: city.Name}
}
