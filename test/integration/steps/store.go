//go:build integration

package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/cucumber/godog"
	"gorm.io/gorm"
)

func registerStoreSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, t.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, t.theDbShouldContainObjectsInWithTheValues)

	ctx.When(`^the email worker processes the queue$`, t.theEmailWorkerProcessesTheQueue)
	ctx.Then(`^(\d+) emails? should have been sent to "([^"]*)"$`, t.emailsShouldHaveBeenSentTo)
	ctx.Then(`^the report drafter should have been called (\d+) times?$`, t.theReportDrafterShouldHaveBeenCalled)
}

func (t *testContext) countRows(table string, criteria map[string]any) (int, error) {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return 0, fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0, result.Error
	}
	return entitySlicePtr.Elem().Len(), nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	count, err := t.countRows(table, nil)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	count, err := t.countRows(table, criteria)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) theEmailWorkerProcessesTheQueue() error {
	t.injector.EmailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) emailsShouldHaveBeenSentTo(quantity int, recipient string) error {
	count := 0
	for _, sent := range t.emails.SentEmails() {
		if sent.To == recipient {
			count++
		}
	}
	if count != quantity {
		return fmt.Errorf("expected %d emails to %s, got %d", quantity, recipient, count)
	}
	return nil
}

func (t *testContext) theReportDrafterShouldHaveBeenCalled(times int) error {
	if calls := t.drafter.Calls(); calls != times {
		return fmt.Errorf("expected %d drafting calls, got %d", times, calls)
	}
	return nil
}
