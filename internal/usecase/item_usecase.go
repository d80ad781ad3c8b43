package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/errors"
	"campuskart/pkg/logger"
	"campuskart/pkg/utils"
)

const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"

	// filterAll disables the category or college filter.
	filterAll = "all"
)

type ItemUseCase struct {
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
	location *time.Location
	now      func() time.Time
}

func NewItemUseCase(itemRepo repository.ItemRepository, userRepo repository.UserRepository, location *time.Location) *ItemUseCase {
	return &ItemUseCase{
		itemRepo: itemRepo,
		userRepo: userRepo,
		location: location,
		now:      time.Now,
	}
}

type BrowseFilter struct {
	Search   string
	Category string
	College  string
	Sort     string
}

type BrowseResult struct {
	Items    []*entity.Item
	Total    int
	Colleges []string
}

type CreateItemInput struct {
	ProductName      string
	ProductImage     string
	Type             string
	Price            int64
	Category         string
	Condition        string
	Description      string
	ShowMobileNumber bool
}

// Browse lists the items visible right now, filtered, sorted and paginated.
func (uc *ItemUseCase) Browse(ctx context.Context, viewerID string, filter BrowseFilter, page utils.PaginationParams) (*BrowseResult, error) {
	items, err := uc.itemRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	sellerIDs := make([]string, 0, len(items))
	for _, item := range items {
		sellerIDs = append(sellerIDs, item.SellerID)
	}
	sellers, err := uc.userRepo.GetByIDs(ctx, sellerIDs)
	if err != nil {
		return nil, err
	}

	visible := VisibleItems(items, sellers, uc.now(), uc.location)
	colleges := collegeFacets(visible)
	matched := FilterItems(visible, filter)

	start, end := page.Window(len(matched))
	out := make([]*entity.Item, 0, end-start)
	for _, item := range matched[start:end] {
		out = append(out, item.ForViewer(viewerID))
	}

	return &BrowseResult{Items: out, Total: len(matched), Colleges: colleges}, nil
}

// VisibleItems drops inactive items and items whose seller is on holiday at now.
func VisibleItems(items []*entity.Item, sellers map[string]*entity.User, now time.Time, loc *time.Location) []*entity.Item {
	visible := make([]*entity.Item, 0, len(items))
	for _, item := range items {
		if item.VisibleAt(sellers[item.SellerID], now, loc) {
			visible = append(visible, item)
		}
	}
	return visible
}

// FilterItems applies search, category and college filters, then sorts.
func FilterItems(items []*entity.Item, filter BrowseFilter) []*entity.Item {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]*entity.Item, 0, len(items))
	for _, item := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.ProductName), search) &&
			!strings.Contains(strings.ToLower(item.Type), search) {
			continue
		}
		if filter.Category != "" && filter.Category != filterAll && item.Category != filter.Category {
			continue
		}
		if filter.College != "" && filter.College != filterAll && item.SellerCollege != filter.College {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch filter.Sort {
		case SortOldest:
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		case SortPriceLow:
			return out[i].Price < out[j].Price
		case SortPriceHigh:
			return out[i].Price > out[j].Price
		default:
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
	})

	return out
}

func collegeFacets(items []*entity.Item) []string {
	seen := make(map[string]bool)
	colleges := []string{}
	for _, item := range items {
		if item.SellerCollege != "" && !seen[item.SellerCollege] {
			seen[item.SellerCollege] = true
			colleges = append(colleges, item.SellerCollege)
		}
	}
	sort.Strings(colleges)
	return colleges
}

func (uc *ItemUseCase) GetItem(ctx context.Context, viewerID, id string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return item.ForViewer(viewerID), nil
}

func isValidCategory(category string) bool {
	switch category {
	case entity.CategoryGadgets, entity.CategoryBooks, entity.CategoryStationary, entity.CategoryOther:
		return true
	}
	return false
}

func isValidCondition(condition string) bool {
	switch condition {
	case entity.ConditionNew, entity.ConditionLikeNew, entity.ConditionUsed:
		return true
	}
	return false
}

func (uc *ItemUseCase) CreateItem(ctx context.Context, sellerID string, input CreateItemInput) (*entity.Item, error) {
	if strings.TrimSpace(input.ProductImage) == "" {
		return nil, errors.BadRequest("Please upload an image", nil)
	}
	if input.Price <= 0 {
		return nil, errors.BadRequest("Price must be greater than 0", nil)
	}
	if !isValidCategory(input.Category) {
		return nil, errors.BadRequest("Invalid category", nil)
	}
	if !isValidCondition(input.Condition) {
		return nil, errors.BadRequest("Invalid condition", nil)
	}

	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	item := &entity.Item{
		ID:               uuid.New().String(),
		SellerID:         seller.ID,
		SellerName:       seller.Name,
		SellerCollege:    seller.College,
		SellerMobile:     seller.Mobile,
		ProductName:      strings.TrimSpace(input.ProductName),
		ProductImage:     input.ProductImage,
		Type:             strings.TrimSpace(input.Type),
		Price:            input.Price,
		Category:         input.Category,
		Condition:        input.Condition,
		Description:      strings.TrimSpace(input.Description),
		ShowMobileNumber: input.ShowMobileNumber,
		IsActive:         true,
		CreatedAt:        uc.now(),
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	logger.Info("Item %s listed by %s", item.ID, sellerID)
	return item, nil
}

func (uc *ItemUseCase) ListMyItems(ctx context.Context, sellerID string) ([]*entity.Item, error) {
	return uc.itemRepo.ListBySeller(ctx, sellerID)
}

func (uc *ItemUseCase) ownedItem(ctx context.Context, sellerID, id string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.SellerID != sellerID {
		return nil, errors.Forbidden("You can only manage your own items", nil)
	}
	return item, nil
}

func (uc *ItemUseCase) MarkSold(ctx context.Context, sellerID, id string) (*entity.Item, error) {
	item, err := uc.ownedItem(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}
	if item.IsSold {
		return nil, errors.BadRequest("Item is already marked as sold", nil)
	}

	soldAt := uc.now()
	if err := uc.itemRepo.MarkSold(ctx, id, soldAt); err != nil {
		return nil, err
	}

	item.IsActive = false
	item.IsSold = true
	item.SoldAt = &soldAt
	return item, nil
}

func (uc *ItemUseCase) DeleteItem(ctx context.Context, sellerID, id string) error {
	if _, err := uc.ownedItem(ctx, sellerID, id); err != nil {
		return err
	}
	return uc.itemRepo.Delete(ctx, id)
}
