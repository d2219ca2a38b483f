package serviceimpl

import (
	"context"
	"fmt"

	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/logger"
)

// IdentityControllerImpl mutates identities on the backend first and patches the
// directory only from the confirmed response. Selections and result pages that still
// hold old ids are left alone; they resolve to the unknown-person placeholder.
type IdentityControllerImpl struct {
	personRepo repositories.PersonRepository
	directory  services.PeopleDirectory
}

func NewIdentityController(personRepo repositories.PersonRepository, directory services.PeopleDirectory) services.IdentityController {
	return &IdentityControllerImpl{
		personRepo: personRepo,
		directory:  directory,
	}
}

// Rename updates the display name. The photo count is kept from the cached record.
func (c *IdentityControllerImpl) Rename(ctx context.Context, id int64, name string) (*models.Person, error) {
	before, ok := c.directory.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("person %d: %w", id, repositories.ErrNotFound)
	}

	updated, err := c.personRepo.Rename(ctx, id, name)
	if err != nil {
		logger.IdentityError("rename", "Failed to rename person", err, map[string]interface{}{
			"people_id": id,
		})
		return nil, fmt.Errorf("failed to rename person %d: %w", id, err)
	}

	renamed := *updated
	renamed.PhotoCount = before.PhotoCount
	if renamed.FaceImageURL == "" {
		renamed.FaceImageURL = before.FaceImageURL
	}
	c.directory.Replace(renamed)

	logger.Identity("rename", "Person renamed", map[string]interface{}{
		"people_id": id,
		"from":      before.Name,
		"to":        renamed.Name,
	})
	return &renamed, nil
}

// Remove deletes the person and drops it from the cache once the backend confirms
func (c *IdentityControllerImpl) Remove(ctx context.Context, id int64) error {
	if err := c.personRepo.Delete(ctx, id); err != nil {
		logger.IdentityError("delete", "Failed to delete person", err, map[string]interface{}{
			"people_id": id,
		})
		return fmt.Errorf("failed to delete person %d: %w", id, err)
	}

	c.directory.Remove(id)

	logger.Identity("delete", "Person deleted", map[string]interface{}{
		"people_id": id,
	})
	return nil
}

// Merge folds source into target; both old ids stop resolving and the merged record is inserted
func (c *IdentityControllerImpl) Merge(ctx context.Context, sourceID, targetID int64) (*models.Person, error) {
	if sourceID == targetID {
		return nil, services.ErrInvalidMerge
	}

	merged, err := c.personRepo.Merge(ctx, sourceID, targetID)
	if err != nil {
		logger.IdentityError("merge", "Failed to merge people", err, map[string]interface{}{
			"source_id": sourceID,
			"target_id": targetID,
		})
		return nil, fmt.Errorf("failed to merge %d into %d: %w", sourceID, targetID, err)
	}

	c.directory.Collapse(sourceID, targetID, *merged)

	logger.Identity("merge", "People merged", map[string]interface{}{
		"source_id": sourceID,
		"target_id": targetID,
		"merged_id": merged.ID,
	})
	return merged, nil
}
