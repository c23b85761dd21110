package scheduleapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/model"
)

const (
	// requestTimeout — общий таймаут каждого запроса к API.
	requestTimeout = 35 * time.Second

	dialTimeout       = 5 * time.Second
	tlsHandshake      = 5 * time.Second
	idleConnTimeout   = 30 * time.Second
	keepAliveInterval = 30 * time.Second
)

// Client — типизированный клиент schedule API.
// Держит один пул соединений на весь процесс: создаётся при старте,
// закрывается при завершении.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New создаёт клиент schedule API с настроенным пулом соединений.
func New(baseURL string, logger *zap.Logger) *Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: dialTimeout, KeepAlive: keepAliveInterval}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: tlsHandshake,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   requestTimeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// Close освобождает пул соединений клиента.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// do выполняет запрос и возвращает тело успешного ответа.
// Не-2xx статусы превращаются в ошибку таксономии, сбои транспорта — в TransportError.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Err: fmt.Errorf("encode request body: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	c.logger.Debug("Schedule API request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Schedule API transport failure",
			zap.String("request_id", requestID),
			zap.String("path", path),
			zap.Error(err))
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read response body: %w", err)}
	}

	if err := errorFromStatus(resp.StatusCode, raw); err != nil {
		c.logger.Warn("Schedule API error response",
			zap.String("request_id", requestID),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", strings.TrimSpace(string(raw))))
		return nil, err
	}

	return raw, nil
}

// getJSON выполняет GET и декодирует тело ответа в out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Err: fmt.Errorf("decode %s response: %w", path, err)}
	}
	return nil
}

// GetUserGroups возвращает группы, привязанные к пользователю.
// Пустой список означает "группа не выбрана" и ошибкой не является.
func (c *Client) GetUserGroups(ctx context.Context, telegramID int64) ([]model.UserGroup, error) {
	params := url.Values{"telegramId": {strconv.FormatInt(telegramID, 10)}}
	var groups []model.UserGroup
	if err := c.getJSON(ctx, "/api/group/user", params, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GroupExists проверяет существование группы по названию.
func (c *Client) GroupExists(ctx context.Context, groupName string) (bool, error) {
	params := url.Values{"groupName": {groupName}}
	var exists bool
	if err := c.getJSON(ctx, "/api/group/exist", params, &exists); err != nil {
		return false, err
	}
	return exists, nil
}

// GetGroupSubgroups возвращает номера подгрупп группы.
func (c *Client) GetGroupSubgroups(ctx context.Context, groupName string) ([]int, error) {
	params := url.Values{"groupName": {groupName}}
	var subgroups []int
	if err := c.getJSON(ctx, "/api/group/subgroups", params, &subgroups); err != nil {
		return nil, err
	}
	return subgroups, nil
}

// UpdateUserGroup меняет привязку пользователя к группе.
func (c *Client) UpdateUserGroup(ctx context.Context, telegramID int64, groupName string, subgroup int) error {
	params := url.Values{
		"telegramId":     {strconv.FormatInt(telegramID, 10)},
		"groupName":      {groupName},
		"subgroupNumber": {strconv.Itoa(subgroup)},
	}
	_, err := c.do(ctx, http.MethodPut, "/api/user/group", params, nil)
	return err
}

// CreateUser регистрирует нового пользователя по Telegram ID.
func (c *Client) CreateUser(ctx context.Context, telegramID int64) error {
	params := url.Values{"telegramId": {strconv.FormatInt(telegramID, 10)}}
	_, err := c.do(ctx, http.MethodPost, "/api/user", params, nil)
	return err
}

// GetElectiveLevels возвращает уровни выборочных дисциплин.
func (c *Client) GetElectiveLevels(ctx context.Context) ([]model.Level, error) {
	var levels []model.Level
	if err := c.getJSON(ctx, "/api/elective/levels", nil, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}

// SearchElectiveLessons ищет дисциплины по частичному названию.
// levelID необязателен: nil означает поиск по всем уровням.
func (c *Client) SearchElectiveLessons(ctx context.Context, lessonName string, sourceID int64, levelID *int64) ([]model.LessonDescriptor, error) {
	params := url.Values{
		"lessonName": {lessonName},
		"sourceId":   {strconv.FormatInt(sourceID, 10)},
	}
	if levelID != nil {
		params.Set("levelId", strconv.FormatInt(*levelID, 10))
	}
	var lessons []model.LessonDescriptor
	if err := c.getJSON(ctx, "/api/elective/lessons", params, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

// GetElectiveTypes возвращает доступные виды занятий дисциплины.
func (c *Client) GetElectiveTypes(ctx context.Context, lessonName string, sourceID int64) ([]string, error) {
	params := url.Values{
		"lessonName": {lessonName},
		"sourceId":   {strconv.FormatInt(sourceID, 10)},
	}
	var types []string
	if err := c.getJSON(ctx, "/api/elective/types", params, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// GetElectiveSubgroups возвращает подгруппы дисциплины для выбранного вида занятий.
func (c *Client) GetElectiveSubgroups(ctx context.Context, lessonSourceID int64, lessonName, lessonType string) ([]int, error) {
	params := url.Values{
		"lessonSourceId": {strconv.FormatInt(lessonSourceID, 10)},
		"lessonName":     {lessonName},
		"lessonType":     {lessonType},
	}
	var subgroups []int
	if err := c.getJSON(ctx, "/api/elective/subgroups", params, &subgroups); err != nil {
		return nil, err
	}
	return subgroups, nil
}

// GetUserElectives возвращает выбранные пользователем дисциплины
// (поле ID в ответе — LessonId).
func (c *Client) GetUserElectives(ctx context.Context, telegramID int64) ([]model.SelectedElective, error) {
	params := url.Values{"telegramId": {strconv.FormatInt(telegramID, 10)}}
	var electives []model.SelectedElective
	if err := c.getJSON(ctx, "/api/user/elective", params, &electives); err != nil {
		return nil, err
	}
	return electives, nil
}

// AddUserElective добавляет выбранную дисциплину
// (поле ID в теле запроса — SourceId).
func (c *Client) AddUserElective(ctx context.Context, telegramID int64, elective model.SelectedElective) error {
	params := url.Values{"telegramId": {strconv.FormatInt(telegramID, 10)}}
	_, err := c.do(ctx, http.MethodPost, "/api/user/elective", params, elective)
	return err
}

// DeleteUserElective удаляет дисциплину из выбора пользователя.
func (c *Client) DeleteUserElective(ctx context.Context, telegramID, electiveID int64) error {
	params := url.Values{
		"telegramId": {strconv.FormatInt(telegramID, 10)},
		"electiveId": {strconv.FormatInt(electiveID, 10)},
	}
	_, err := c.do(ctx, http.MethodDelete, "/api/user/elective", params, nil)
	return err
}

// GetSchedule возвращает занятия на указанную дату.
// Дата передаётся серверу в ISO 8601 UTC.
func (c *Client) GetSchedule(ctx context.Context, dateTime time.Time, telegramID int64) ([]model.Lesson, error) {
	params := url.Values{
		"dateTime":       {dateTime.UTC().Format(time.RFC3339)},
		"userTelegramId": {strconv.FormatInt(telegramID, 10)},
	}
	var lessons []model.Lesson
	if err := c.getJSON(ctx, "/api/schedule", params, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

// GetUserAlerts забирает пачку недоставленных оповещений.
func (c *Client) GetUserAlerts(ctx context.Context, batchSize int) ([]model.UserAlert, error) {
	params := url.Values{"batchSize": {strconv.Itoa(batchSize)}}
	var alerts []model.UserAlert
	if err := c.getJSON(ctx, "/api/useralerts", params, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// DeleteUserAlerts подтверждает доставку оповещений по их ID.
func (c *Client) DeleteUserAlerts(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := c.do(ctx, http.MethodDelete, "/api/useralerts", nil, ids)
	return err
}
