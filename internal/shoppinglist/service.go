package shoppinglist

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/event"
	"github.com/osse101/NutriFind_Go/internal/live"
	"github.com/osse101/NutriFind_Go/internal/logger"
)

// Service manages the shopping list
type Service interface {
	// AddItem stores item stamped with the current time and returns it with
	// its assigned id
	AddItem(ctx context.Context, item domain.ShoppingListItem) (*domain.ShoppingListItem, error)
	// AddIngredientsFromRecipe adds one unchecked item per ingredient, tagged
	// with the recipe it came from. All rows are stored or none are.
	AddIngredientsFromRecipe(ctx context.Context, ingredients []domain.Ingredient, recipeID int, recipeTitle string) ([]domain.ShoppingListItem, error)
	UpdateItem(ctx context.Context, item domain.ShoppingListItem) error
	// ToggleChecked writes item back with IsChecked flipped. The write replaces
	// the whole row, so the last writer wins.
	ToggleChecked(ctx context.Context, item domain.ShoppingListItem) (*domain.ShoppingListItem, error)
	DeleteItem(ctx context.Context, id int64) error
	DeleteCheckedItems(ctx context.Context) (int64, error)
	ClearAll(ctx context.Context) error
	Get(ctx context.Context, id int64) (*domain.ShoppingListItem, error)
	All(ctx context.Context) ([]domain.ShoppingListItem, error)
	Unchecked(ctx context.Context) ([]domain.ShoppingListItem, error)
	ObserveAll(ctx context.Context) *live.Subscription[[]domain.ShoppingListItem]
	ObserveUnchecked(ctx context.Context) *live.Subscription[[]domain.ShoppingListItem]
}

type service struct {
	repo Repository
	bus  event.Bus
	now  func() int64
}

// NewService creates a new shopping list service
func NewService(repo Repository, bus event.Bus) Service {
	return newServiceWithClock(repo, bus, func() int64 { return time.Now().UnixMilli() })
}

func newServiceWithClock(repo Repository, bus event.Bus, now func() int64) *service {
	return &service{repo: repo, bus: bus, now: now}
}

// FormatAmount renders an ingredient amount without trailing zeros
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// ItemFromIngredient builds an unstored shopping list row for ingredient
func ItemFromIngredient(ingredient domain.Ingredient, recipeID int, recipeTitle string, addedAt int64) domain.ShoppingListItem {
	id := recipeID
	title := recipeTitle
	return domain.ShoppingListItem{
		Name:        ingredient.Name,
		Amount:      FormatAmount(ingredient.Amount),
		Unit:        ingredient.Unit,
		RecipeID:    &id,
		RecipeTitle: &title,
		AddedAt:     addedAt,
	}
}

func (s *service) AddItem(ctx context.Context, item domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
	item.ID = 0
	item.AddedAt = s.now()

	id, err := s.repo.InsertItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("add shopping list item: %w", err)
	}
	item.ID = id

	logger.FromContext(ctx).Debug(LogMsgItemAdded, "item_id", id)
	return &item, nil
}

func (s *service) AddIngredientsFromRecipe(ctx context.Context, ingredients []domain.Ingredient, recipeID int, recipeTitle string) ([]domain.ShoppingListItem, error) {
	addedAt := s.now()
	items := make([]domain.ShoppingListItem, len(ingredients))
	for i, ingredient := range ingredients {
		items[i] = ItemFromIngredient(ingredient, recipeID, recipeTitle, addedAt)
	}

	ids, err := s.repo.InsertItems(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("add ingredients of recipe %d: %w", recipeID, err)
	}
	for i := range items {
		items[i].ID = ids[i]
	}

	logger.FromContext(ctx).Info(LogMsgIngredientsAdded, "recipe_id", recipeID, "count", len(items))
	return items, nil
}

func (s *service) UpdateItem(ctx context.Context, item domain.ShoppingListItem) error {
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return fmt.Errorf("update shopping list item %d: %w", item.ID, err)
	}
	logger.FromContext(ctx).Debug(LogMsgItemUpdated, "item_id", item.ID)
	return nil
}

func (s *service) ToggleChecked(ctx context.Context, item domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
	item.IsChecked = !item.IsChecked
	if err := s.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *service) DeleteItem(ctx context.Context, id int64) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("delete shopping list item %d: %w", id, err)
	}
	logger.FromContext(ctx).Debug(LogMsgItemDeleted, "item_id", id)
	return nil
}

func (s *service) DeleteCheckedItems(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteCheckedItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete checked items: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgCheckedRemoved, "count", n)
	return n, nil
}

func (s *service) ClearAll(ctx context.Context) error {
	if err := s.repo.ClearItems(ctx); err != nil {
		return fmt.Errorf("clear shopping list: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgListCleared)
	return nil
}

func (s *service) Get(ctx context.Context, id int64) (*domain.ShoppingListItem, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *service) All(ctx context.Context) ([]domain.ShoppingListItem, error) {
	return s.repo.ListItems(ctx)
}

func (s *service) Unchecked(ctx context.Context) ([]domain.ShoppingListItem, error) {
	return s.repo.ListUncheckedItems(ctx)
}

func (s *service) ObserveAll(ctx context.Context) *live.Subscription[[]domain.ShoppingListItem] {
	return live.NewQuery(s.bus, QueryAll, s.repo.ListItems, event.ShoppingListChanged).Observe(ctx)
}

func (s *service) ObserveUnchecked(ctx context.Context) *live.Subscription[[]domain.ShoppingListItem] {
	return live.NewQuery(s.bus, QueryUnchecked, s.repo.ListUncheckedItems, event.ShoppingListChanged).Observe(ctx)
}
