package gds

import (
	"context"
	"net/http"
)

// CountryList fetches the provider's full country list.
func (c *Client) CountryList(ctx context.Context) (*CountryListResponse, error) {
	var resp CountryListResponse
	if err := c.do(ctx, http.MethodGet, "/CountryList", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CityList fetches the city list for one country.
func (c *Client) CityList(ctx context.Context, countryCode string) (*CityListResponse, error) {
	req := struct {
		CountryCode string `json:"CountryCode"`
	}{CountryCode: countryCode}

	var resp CityListResponse
	if err := c.do(ctx, http.MethodPost, "/CityList", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// HotelCodeList fetches the hotel codes for a country and city.
func (c *Client) HotelCodeList(ctx context.Context, countryCode, cityCode string) (*HotelCodeListResponse, error) {
	req := struct {
		CountryCode        string `json:"CountryCode"`
		CityCode           string `json:"CityCode"`
		IsDetailedResponse bool   `json:"IsDetailedResponse"`
	}{CountryCode: countryCode, CityCode: cityCode}

	var resp HotelCodeListResponse
	if err := c.do(ctx, http.MethodPost, "/HotelCodeList", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
