package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

var URL, _ = os.LookupEnv("API_URL")
var PORT, _ = os.LookupEnv("API_PORT")
var TOKEN, _ = os.LookupEnv("API_TOKEN")
var apiURL = fmt.Sprintf("http://%s:%s/api/v1/transaction", URL, PORT)
var sendMoneyURL = apiURL + "/send-money"
var historyURL = apiURL + "/history"

const (
	workers  = 10
	duration = 30 * time.Second
)

var receivers = []string{
	"alice@example.com",
	"bob@example.com",
	"carol@example.com",
	"+201001234567",
}

type SendMoney struct {
	ReceiverData string `json:"receiverData"`
	Amount       string `json:"amount"`
	PIN          string `json:"PIN"`
}

func main() {
	var wg sync.WaitGroup
	wg.Add(workers + 1)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			var sendResponse interface{}
			start := time.Now()
			for time.Since(start) < duration {
				resp, err := sendMoney()
				if err != nil && resp != nil {
					fmt.Println("Error sending money:", err)
				}

				if resp != nil {
					err = json.NewDecoder(resp.Body).Decode(&sendResponse)
					if err != nil {
						resp.Body.Close()
						fmt.Printf("error decoding send response: %v", err)
					}

					fmt.Printf("Transfer sent. Status code: %d, Message: %v\n", resp.StatusCode, sendResponse)
					resp.Body.Close()
				}

				time.Sleep(time.Duration(rand.Intn(1000)) * time.Millisecond)
			}
		}()
	}

	go func() {
		defer wg.Done()
		ticker := time.NewTicker(5 * time.Second)
		for range ticker.C {
			printHistory()
		}
	}()

	wg.Wait()
	printHistory()
}

func sendMoney() (*http.Response, error) {
	payload := createSendMoney()
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, sendMoneyURL, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+TOKEN)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("wrong status code: %d", resp.StatusCode)
	}
	return resp, nil
}

func createSendMoney() SendMoney {
	amount := rand.Float64()*500 + 1
	amountStr := fmt.Sprintf("%.2f", amount)

	pin := "1234"
	if rand.Float64() < 0.05 {
		pin = "0000"
	}

	return SendMoney{
		ReceiverData: receivers[rand.Intn(len(receivers))],
		Amount:       amountStr,
		PIN:          pin,
	}
}

func printHistory() {
	req, err := http.NewRequest(http.MethodGet, historyURL, nil)
	if err != nil {
		fmt.Println("Error building history request:", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+TOKEN)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Error getting history:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Println("Wrong status code:", resp.StatusCode)
		return
	}

	var historyResponse struct {
		Data []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
			Amount string `json:"amount"`
		} `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&historyResponse)
	if err != nil {
		fmt.Println("Error decoding history:", err)
		return
	}

	fmt.Printf("History entries: %d\n", len(historyResponse.Data))
}
