package dto

import (
	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
)

// PersonLookup resolves a people id to a cached record or the unknown placeholder
type PersonLookup func(id int64) models.Person

func PersonToResponse(p models.Person, media repositories.MediaLocator) PersonResponse {
	face := p.FaceImageURL
	if face == "" && !p.Unknown && media != nil {
		face = media.FaceURL(p.ID)
	}
	return PersonResponse{
		ID:           p.ID,
		Name:         p.Name,
		PhotoCount:   p.PhotoCount,
		FaceImageURL: face,
		Initial:      p.Initial(),
		Unknown:      p.Unknown,
	}
}

func PeopleToResponse(people []models.Person, media repositories.MediaLocator) PeopleListResponse {
	out := make([]PersonResponse, len(people))
	for i, p := range people {
		out[i] = PersonToResponse(p, media)
	}
	return PeopleListResponse{People: out, Total: len(out)}
}

func PhotoMatchToResponse(m models.PhotoMatch, lookup PersonLookup, media repositories.MediaLocator, thumbSize string) PhotoMatchResponse {
	resp := PhotoMatchResponse{
		ImageID:      m.ID,
		Date:         m.CapturedAt,
		RawDate:      m.RawDate,
		Location:     m.Location,
		PeopleIDs:    m.PeopleIDs,
		People:       make([]PersonResponse, 0, len(m.PeopleIDs)),
		ThumbnailURL: m.ThumbnailURL,
	}
	if resp.PeopleIDs == nil {
		resp.PeopleIDs = []int64{}
	}
	if media != nil {
		resp.ImageURL = media.ImageURL(m.ID)
		if resp.ThumbnailURL == "" {
			resp.ThumbnailURL = media.ThumbnailURL(m.ID, thumbSize)
		}
	}
	if lookup != nil {
		for _, id := range m.PeopleIDs {
			resp.People = append(resp.People, PersonToResponse(lookup(id), media))
		}
	}
	return resp
}

// ResultSetToResponse renders the result set in display order
func ResultSetToResponse(rs models.ResultSet, lookup PersonLookup, media repositories.MediaLocator, thumbSize string) ResultsResponse {
	page := rs.Page()
	display := rs.Display()

	resp := ResultsResponse{
		Loaded:     rs.Loaded(),
		SortByDate: rs.SortByDate(),
		Results:    make([]PhotoMatchResponse, len(display)),
	}
	for i, m := range display {
		resp.Results[i] = PhotoMatchToResponse(m, lookup, media, thumbSize)
	}
	if !rs.Loaded() {
		return resp
	}

	resp.Total = page.Total
	resp.Page = page.Page
	resp.PerPage = page.PerPage
	resp.TotalPages = page.TotalPages()
	resp.HasPrevious = page.HasPrevious()
	resp.HasNext = page.HasNext()
	return resp
}

func SelectionToResponse(sel models.Selection, media repositories.MediaLocator) SelectionResponse {
	people := sel.People()
	out := make([]PersonResponse, len(people))
	for i, p := range people {
		out[i] = PersonToResponse(p, media)
	}
	return SelectionResponse{
		Label:  sel.Label(),
		IDs:    sel.IDs(),
		People: out,
	}
}

func SessionToResponse(s services.Session, media repositories.MediaLocator) SessionResponse {
	return SessionResponse{
		ID:         s.ID(),
		Query:      s.Query(),
		Selection:  SelectionToResponse(s.Selection(), media),
		SortByDate: s.Results().SortByDate(),
		LastActive: s.LastActive(),
	}
}

func DatasetJobToResponse(job *models.DatasetJob) *DatasetJobResponse {
	if job == nil {
		return nil
	}
	return &DatasetJobResponse{
		ID:             job.ID,
		FolderPath:     job.Folder,
		Status:         job.Status,
		TotalProcessed: job.TotalProcessed,
		Error:          job.LastError,
		StartedAt:      job.StartedAt,
		CompletedAt:    job.CompletedAt,
		CreatedAt:      job.CreatedAt,
	}
}
