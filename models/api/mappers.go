package api

import "dustbinbackend/models"

// DomainUserToAPIUser converts a domain User model to an API UserModel
func DomainUserToAPIUser(domainUser *models.User) *UserModel {
	if domainUser == nil {
		return nil
	}

	return &UserModel{
		ID:      domainUser.ID,
		Email:   domainUser.Email,
		Name:    domainUser.Name,
		Picture: domainUser.Picture,
	}
}

// DomainDustbinToAPIDustbin converts a domain Dustbin model to an API DustbinModel
func DomainDustbinToAPIDustbin(domainDustbin *models.Dustbin) *DustbinModel {
	if domainDustbin == nil {
		return nil
	}

	return &DustbinModel{
		ID:          domainDustbin.ID,
		Latitude:    domainDustbin.Latitude.InexactFloat64(),
		Longitude:   domainDustbin.Longitude.InexactFloat64(),
		Address:     domainDustbin.Address,
		Description: domainDustbin.Description,
		Status:      string(domainDustbin.Status),
		ReportedBy:  domainDustbin.ReportedBy,
		CreatedAt:   domainDustbin.CreatedAt,
		UpdatedAt:   domainDustbin.UpdatedAt,
	}
}

// DomainDustbinsToAPIDustbins converts a slice of domain Dustbins to API DustbinModels
func DomainDustbinsToAPIDustbins(domainDustbins []*models.Dustbin) []*DustbinModel {
	apiDustbins := make([]*DustbinModel, 0, len(domainDustbins))
	for _, domainDustbin := range domainDustbins {
		apiDustbins = append(apiDustbins, DomainDustbinToAPIDustbin(domainDustbin))
	}
	return apiDustbins
}
