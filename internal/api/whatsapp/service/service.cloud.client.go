// File này gọi Meta Graph API để gửi tin nhắn outbound.
// Credentials (access token) là của từng tenant, giải mã tại mỗi lần gọi,
// không đọc từ biến môi trường dùng chung.
package whatsappsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	businessmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/models"
	businesssvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/service"
	whatsappdto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/dto"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/common"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/global"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/logger"
)

// CloudAPIClient gửi tin nhắn qua WhatsApp Cloud API
type CloudAPIClient struct {
	businessService *businesssvc.BusinessService
	httpClient      *http.Client
	baseURL         string
}

// NewCloudAPIClient tạo mới CloudAPIClient với timeout từ cấu hình
func NewCloudAPIClient(businessService *businesssvc.BusinessService) *CloudAPIClient {
	timeout := time.Duration(global.ServerConfig.MetaGraphAPITimeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &CloudAPIClient{
		businessService: businessService,
		httpClient:      &http.Client{Timeout: timeout},
		baseURL:         global.ServerConfig.MetaGraphAPIBaseURL,
	}
}

// graphSendResponse là phần response Graph API mà client cần đọc
type graphSendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// SendTextMessage gửi một tin nhắn văn bản tới khách hàng qua Graph API.
// Business phải có ít nhất một phone number ID và access token còn hạn.
func (c *CloudAPIClient) SendTextMessage(ctx context.Context, business *businessmodels.Business, to, text string) (*whatsappdto.SendMessageResult, error) {
	log := logger.GetAppLogger()

	if len(business.PhoneNumberIDs) == 0 {
		return nil, common.NewError(
			common.ErrCodeBusiness,
			"Business chưa cấu hình phone number ID nào",
			common.StatusBadRequest,
			nil,
		)
	}

	accessToken, err := c.businessService.GetDecryptedAccessToken(ctx, business)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                to,
		"type":              "text",
		"text":              map[string]interface{}{"body": text},
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, business.PhoneNumberIDs[0])
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).WithFields(map[string]interface{}{
			"subDomain": business.SubDomain,
			"to":        to,
		}).Error("📨 [WHATSAPP SEND] Lỗi khi gọi Graph API")
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	var graphResp graphSendResponse
	_ = json.Unmarshal(bodyBytes, &graphResp)

	if resp.StatusCode != http.StatusOK {
		errorMsg := fmt.Sprintf("graph API returned status %d", resp.StatusCode)
		if graphResp.Error != nil {
			errorMsg = fmt.Sprintf("%s: %s (code %d)", errorMsg, graphResp.Error.Message, graphResp.Error.Code)
		}
		log.WithFields(map[string]interface{}{
			"subDomain":  business.SubDomain,
			"to":         to,
			"statusCode": resp.StatusCode,
		}).Error("📨 [WHATSAPP SEND] Graph API trả về lỗi")
		return nil, common.NewError(common.ErrCodeBusiness, errorMsg, common.StatusBadGateway, nil)
	}

	if len(graphResp.Messages) == 0 {
		return nil, common.NewError(common.ErrCodeBusiness, "Graph API không trả về message ID", common.StatusBadGateway, nil)
	}

	log.WithFields(map[string]interface{}{
		"subDomain":     business.SubDomain,
		"to":            to,
		"metaMessageId": graphResp.Messages[0].ID,
	}).Info("📨 [WHATSAPP SEND] Đã gửi tin nhắn qua Graph API")

	return &whatsappdto.SendMessageResult{MetaMessageID: graphResp.Messages[0].ID}, nil
}
