//go:build integration

// Package steps provides step definitions for the BDD feature suite.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fincheck/backend/internal/application/usecase/auth"
	"github.com/fincheck/backend/internal/application/usecase/bankaccount"
	"github.com/fincheck/backend/internal/application/usecase/category"
	"github.com/fincheck/backend/internal/application/usecase/transaction"
	"github.com/fincheck/backend/internal/application/usecase/user"
	"github.com/fincheck/backend/internal/domain/entity"
	"github.com/fincheck/backend/internal/infra/server/router"
	"github.com/fincheck/backend/internal/integration/adapters"
	"github.com/fincheck/backend/internal/integration/entrypoint/controller"
	"github.com/fincheck/backend/internal/integration/entrypoint/middleware"
	"github.com/fincheck/backend/internal/integration/persistence"
	"github.com/fincheck/backend/internal/integration/persistence/model"
	"github.com/fincheck/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri     string
	headers map[string]string
	client  *http.Client
	db      *mock.Db

	response *response

	accessToken      string
	currentUserID    uuid.UUID
	currentAccountID uuid.UUID
	currentCatID     uuid.UUID
	lastTxID         uuid.UUID
	foreignAccountID uuid.UUID
	foreignCatID     uuid.UUID
	foreignTxID      uuid.UUID
	lastCreatedID    uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int

func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":         &model.UserModel{},
			"categories":    &model.CategoryModel{},
			"bank_accounts": &model.BankAccountModel{},
			"transactions":  &model.TransactionModel{},
		}),
	}
	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Setup steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is authenticated$`, test.theUserIsAuthenticated)
	ctx.Given(`^a bank account exists with name "([^"]*)" and initial balance "([^"]*)"$`, test.aBankAccountExists)
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExists)
	ctx.Given(`^a transaction exists with name "([^"]*)" value "([^"]*)" type "([^"]*)" on date "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^another user owns a bank account, a category and a transaction$`, test.anotherUserOwnsResources)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I send (\d+) "([^"]*)" requests to "([^"]*)" with body:$`, test.iSendNRequestsToWithBody)
	ctx.When(`^I authenticate with the issued access token$`, test.iAuthenticateWithTheIssuedAccessToken)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response should not contain "([^"]*)"$`, test.theResponseShouldNotContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response should be a list of (\d+) items$`, test.theResponseShouldBeAListOfItems)
	ctx.Then(`^the response item with name "([^"]*)" should have field "([^"]*)" equal to "([^"]*)"$`, test.theResponseItemShouldHaveField)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.currentAccountID = uuid.Nil
	t.currentCatID = uuid.Nil
	t.lastTxID = uuid.Nil
	t.foreignAccountID = uuid.Nil
	t.foreignCatID = uuid.Nil
	t.foreignTxID = uuid.Nil
	t.lastCreatedID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		testServerPort = findAvailablePort()

		go func() {
			gin.SetMode(gin.TestMode)

			userRepo := persistence.NewUserRepository(testDB.DbConn)
			bankAccountRepo := persistence.NewBankAccountRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)

			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)

			validateBankAccountOwner := bankaccount.NewValidateBankAccountOwnershipUseCase(bankAccountRepo)
			validateCategoryOwner := category.NewValidateCategoryOwnershipUseCase(categoryRepo)
			validateTransactionOwner := transaction.NewValidateTransactionOwnershipUseCase(transactionRepo)

			signUpUseCase := auth.NewSignUpUseCase(userRepo, passwordService, tokenService)
			signInUseCase := auth.NewSignInUseCase(userRepo, passwordService, tokenService)
			getUserUseCase := user.NewGetUserUseCase(userRepo)

			createBankAccountUseCase := bankaccount.NewCreateBankAccountUseCase(bankAccountRepo)
			listBankAccountsUseCase := bankaccount.NewListBankAccountsUseCase(bankAccountRepo, transactionRepo)
			updateBankAccountUseCase := bankaccount.NewUpdateBankAccountUseCase(bankAccountRepo)
			deleteBankAccountUseCase := bankaccount.NewDeleteBankAccountUseCase(bankAccountRepo, validateBankAccountOwner)

			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, validateCategoryOwner)

			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, validateBankAccountOwner, validateCategoryOwner)
			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, validateTransactionOwner, validateBankAccountOwner, validateCategoryOwner)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, validateTransactionOwner)

			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			authController := controller.NewAuthController(signUpUseCase, signInUseCase)
			userController := controller.NewUserController(getUserUseCase)
			bankAccountController := controller.NewBankAccountController(
				createBankAccountUseCase,
				listBankAccountsUseCase,
				updateBankAccountUseCase,
				deleteBankAccountUseCase,
			)
			categoryController := controller.NewCategoryController(
				createCategoryUseCase,
				listCategoriesUseCase,
				updateCategoryUseCase,
				deleteCategoryUseCase,
			)
			transactionController := controller.NewTransactionController(
				createTransactionUseCase,
				listTransactionsUseCase,
				updateTransactionUseCase,
				deleteTransactionUseCase,
			)

			logger := newDiscardLogger()
			signinRateLimiter := middleware.NewRateLimiterWithConfig(mock.NewRedis(), logger, 5, time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				userController,
				bankAccountController,
				categoryController,
				transactionController,
				signinRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	t.uri = fmt.Sprintf("http://localhost:%d", testServerPort)

	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	repo := persistence.NewUserRepository(testDB.DbConn)
	u := entity.NewUser("Test User", email, hashPassword(password))
	t.currentUserID = u.ID
	return repo.CreateWithCategories(context.Background(), u, entity.DefaultCategories(u.ID))
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsAuthenticated() error {
	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)
	token, err := tokenService.GenerateAccessToken(t.currentUserID)
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) aBankAccountExists(name, initialBalance string) error {
	balance, err := decimal.NewFromString(initialBalance)
	if err != nil {
		return err
	}
	account := entity.NewBankAccount(t.currentUserID, name, balance, entity.BankAccountTypeChecking, "#7950F2")
	t.currentAccountID = account.ID
	return testDB.DbConn.Create(model.BankAccountFromEntity(account)).Error
}

func (t *testContext) aCategoryExists(name, categoryType string) error {
	cat := entity.NewCategory(t.currentUserID, name, "tag", entity.TransactionType(categoryType))
	t.currentCatID = cat.ID
	return testDB.DbConn.Create(model.CategoryFromEntity(cat)).Error
}

func (t *testContext) aTransactionExists(name, value, txType, date string) error {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}
	parsedDate, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return err
	}
	tx := entity.NewTransaction(t.currentUserID, t.currentAccountID, t.currentCatID, name, amount, parsedDate, entity.TransactionType(txType))
	t.lastTxID = tx.ID
	return testDB.DbConn.Create(model.TransactionFromEntity(tx)).Error
}

func (t *testContext) anotherUserOwnsResources() error {
	repo := persistence.NewUserRepository(testDB.DbConn)
	foreign := entity.NewUser("Foreign User", fmt.Sprintf("foreign-%s@example.com", uuid.New()), hashPassword("ForeignPass123"))
	if err := repo.CreateWithCategories(context.Background(), foreign, entity.DefaultCategories(foreign.ID)); err != nil {
		return err
	}

	account := entity.NewBankAccount(foreign.ID, "Foreign Account", decimal.NewFromInt(500), entity.BankAccountTypeChecking, "#000000")
	if err := testDB.DbConn.Create(model.BankAccountFromEntity(account)).Error; err != nil {
		return err
	}
	t.foreignAccountID = account.ID

	cat := entity.NewCategory(foreign.ID, "Foreign Category", "tag", entity.TransactionTypeOutcome)
	if err := testDB.DbConn.Create(model.CategoryFromEntity(cat)).Error; err != nil {
		return err
	}
	t.foreignCatID = cat.ID

	tx := entity.NewTransaction(foreign.ID, account.ID, cat.ID, "Foreign Tx",
		decimal.NewFromInt(50), time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), entity.TransactionTypeOutcome)
	if err := testDB.DbConn.Create(model.TransactionFromEntity(tx)).Error; err != nil {
		return err
	}
	t.foreignTxID = tx.ID
	return nil
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{bank_account_id}}", t.currentAccountID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCatID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTxID.String())
	content = strings.ReplaceAll(content, "{{foreign_bank_account_id}}", t.foreignAccountID.String())
	content = strings.ReplaceAll(content, "{{foreign_category_id}}", t.foreignCatID.String())
	content = strings.ReplaceAll(content, "{{foreign_transaction_id}}", t.foreignTxID.String())
	content = strings.ReplaceAll(content, "{{last_created_id}}", t.lastCreatedID.String())
	return content
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iSendNRequestsToWithBody(count int, method, path string, body *godog.DocString) error {
	for i := 0; i < count; i++ {
		if err := t.iSendARequestToWithBody(method, path, body); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.uri + path

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var objectBody map[string]any
	if err := json.Unmarshal(bodyBytes, &objectBody); err == nil {
		t.response.body = objectBody
		if idStr, ok := objectBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastCreatedID = id
			}
		}
		return nil
	}

	var listBody []any
	if err := json.Unmarshal(bodyBytes, &listBody); err == nil {
		t.response.body = listBody
		return nil
	}

	t.response.body = string(bodyBytes)
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field %q: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseShouldNotContain(field string) error {
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	if _, exists := body[field]; exists {
		return fmt.Errorf("response unexpectedly contains field %q: %v", field, body)
	}
	return nil
}

func (t *testContext) iAuthenticateWithTheIssuedAccessToken() error {
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	token, ok := body["accessToken"].(string)
	if !ok || token == "" {
		return fmt.Errorf("no accessToken in response: %v", body)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	value, exists := body[field]
	if !exists {
		return fmt.Errorf("field %q not found in response: %v", field, body)
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theResponseShouldBeAListOfItems(expectedCount int) error {
	list, ok := t.response.body.([]any)
	if !ok {
		return fmt.Errorf("response is not a JSON list: %v", t.response.body)
	}
	if len(list) != expectedCount {
		return fmt.Errorf("expected %d items, got %d", expectedCount, len(list))
	}
	return nil
}

func (t *testContext) theResponseItemShouldHaveField(name, field, expectedValue string) error {
	list, ok := t.response.body.([]any)
	if !ok {
		return fmt.Errorf("response is not a JSON list: %v", t.response.body)
	}
	for _, raw := range list {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if fmt.Sprintf("%v", item["name"]) != name {
			continue
		}
		actual := fmt.Sprintf("%v", item[field])
		if actual != expectedValue {
			return fmt.Errorf("item %q field %q expected %q, got %q", name, field, expectedValue, actual)
		}
		return nil
	}
	return fmt.Errorf("no item named %q in response: %v", name, list)
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	entitySlice := reflect.New(reflect.SliceOf(entityType))

	result := t.db.DbConn.Find(entitySlice.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlice.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q, got %d", quantity, table, count)
	}
	return nil
}
