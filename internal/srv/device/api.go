package device

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jypelle/simplicity/apimodel"
	"github.com/jypelle/simplicity/internal/face"
	"github.com/jypelle/simplicity/internal/srv/config"
	"github.com/jypelle/simplicity/internal/srv/event"
	"github.com/jypelle/simplicity/internal/tool"
	"github.com/sirupsen/logrus"
)

type Api struct {
	eventChannel chan event.ApiEvent

	router    *mux.Router
	apiRouter *mux.Router
	server    *http.Server

	config *config.ServerConfig
}

func NewApi(config *config.ServerConfig) *Api {
	api := Api{
		config:       config,
		eventChannel: make(chan event.ApiEvent),
	}

	api.router = mux.NewRouter().StrictSlash(false)

	api.apiRouter = api.router.PathPrefix("/api").Subrouter()
	api.apiRouter.NotFoundHandler = http.HandlerFunc(ErrorNotFoundAction)
	api.apiRouter.MethodNotAllowedHandler = http.HandlerFunc(ErrorMethodNotAllowedAction)

	// Auth middleware
	api.apiRouter.Use(
		func(handler http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				defer func() {
					if rec := recover(); rec != nil {
						logrus.Warningf("recovered from panic : [%v] - stack trace : \n [%s]", rec, debug.Stack())
						GlobalErrorAction(w, fmt.Sprintf("%v", rec), http.StatusInternalServerError)
					}
				}()

				// Check API Key
				if r.Header.Get("x-api-key") != config.ServerParam.ApiParam.ApiKey {
					ErrorStatusAction(w, r, http.StatusForbidden)
					return
				}

				logrus.Debugf("PATH: %s %s", r.Host, r.URL.Path)

				handler.ServeHTTP(w, r)
			})
		})

	api.apiRouter.HandleFunc("/is_alive",
		func(w http.ResponseWriter, r *http.Request) {
			ErrorStatusAction(w, r, http.StatusOK)
		}).Methods("GET")
	api.apiRouter.HandleFunc("/face", api.faceAction).Methods("GET")
	api.apiRouter.HandleFunc("/face.png", api.faceImageAction).Methods("GET")
	api.apiRouter.HandleFunc("/battery/{percent}/{charging}", api.batteryAction).Methods("POST")
	api.apiRouter.HandleFunc("/bluetooth/{connected}", api.bluetoothAction).Methods("POST")

	// Tell the browser that it's OK for JS to communicate with the server
	headersOk := handlers.AllowedHeaders([]string{"Authorization", "x-api-key"})
	originsOk := handlers.AllowedOrigins([]string{"*"})
	methodsOk := handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"})

	api.server = &http.Server{
		Addr:         ":" + strconv.FormatInt(config.ServerParam.ApiParam.SslPort, 10),
		Handler:      handlers.CompressHandler(handlers.CORS(originsOk, headersOk, methodsOk)(api.router)),
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 120,
	}

	return &api
}

func (d *Api) Start() {
	logrus.Infof("Start api device")

	existServerCert, err := tool.IsFileExists(d.selfSignedCertFilename())
	if err != nil {
		logrus.Fatalf("Unable to access %s: %v\n", d.selfSignedCertFilename(), err)
	}

	existServerKey, err := tool.IsFileExists(d.selfSignedKeyFilename())
	if err != nil {
		logrus.Fatalf("Unable to access %s: %v\n", d.selfSignedKeyFilename(), err)
	}

	if !existServerCert || !existServerKey {
		logrus.Info("Missing cert and key files, trying to generate them...")
		err = tool.GenerateTlsCertificate(
			"jypelle",
			"Simplicity Server",
			d.selfSignedKeyFilename(),
			d.selfSignedCertFilename(),
			[]string{})
		if err != nil {
			logrus.Fatalf("Unable to generate cert and key files : %v\n", err)
		}
		logrus.Info("Self-signed cert and key files generated")
	}

	// Launch https server
	go func() {
		err := d.server.ListenAndServeTLS(d.selfSignedCertFilename(), d.selfSignedKeyFilename())
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Error(err)
		}
	}()
}

func (d *Api) StopSendingEvent() {
	logrus.Infof("Stop api device")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.server.Shutdown(ctx); err != nil {
		logrus.Warnf("Unable to shutdown api server: %v", err)
	}
}

func (d *Api) EventChannel() chan event.ApiEvent {
	return d.eventChannel
}

// Handler returns the api routes without TLS
func (d *Api) Handler() http.Handler {
	return d.server.Handler
}

// request hands data over to the event loop and waits for its answer
func (d *Api) request(r *http.Request, data interface{}) error {
	result := make(chan error, 1)
	select {
	case d.eventChannel <- event.ApiEvent{Result: result, Data: data}:
	case <-r.Context().Done():
		return r.Context().Err()
	}
	return <-result
}

func (d *Api) faceAction(w http.ResponseWriter, r *http.Request) {
	faceChan := make(chan apimodel.Face, 1)
	if err := d.request(r, event.ApiEventFaceData{Face: faceChan}); err != nil {
		GlobalErrorAction(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(<-faceChan); err != nil {
		logrus.Warnf("Unable to encode face: %v", err)
	}
}

func (d *Api) faceImageAction(w http.ResponseWriter, r *http.Request) {
	imageChan := make(chan image.Image, 1)
	if err := d.request(r, event.ApiEventFaceImageData{Image: imageChan}); err != nil {
		GlobalErrorAction(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, <-imageChan); err != nil {
		logrus.Warnf("Unable to encode face image: %v", err)
	}
}

func (d *Api) batteryAction(w http.ResponseWriter, r *http.Request) {
	if !d.config.SimulationMode {
		apimodel.SimulationOnlyErrorMessage.SendError(w)
		return
	}

	vars := mux.Vars(r)
	percent, err := strconv.Atoi(vars["percent"])
	if err != nil {
		apimodel.WrongParametersErrorMessage.SendError(w)
		return
	}
	charging, err := strconv.ParseBool(vars["charging"])
	if err != nil {
		apimodel.WrongParametersErrorMessage.SendError(w)
		return
	}

	err = d.request(r, event.ApiEventBatteryData{State: face.BatteryState{Percent: percent, IsCharging: charging}})
	if err != nil {
		GlobalErrorAction(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	ErrorStatusAction(w, r, http.StatusOK)
}

func (d *Api) bluetoothAction(w http.ResponseWriter, r *http.Request) {
	if !d.config.SimulationMode {
		apimodel.SimulationOnlyErrorMessage.SendError(w)
		return
	}

	connected, err := strconv.ParseBool(mux.Vars(r)["connected"])
	if err != nil {
		apimodel.WrongParametersErrorMessage.SendError(w)
		return
	}

	err = d.request(r, event.ApiEventBluetoothData{State: face.BluetoothState{Connected: connected}})
	if err != nil {
		GlobalErrorAction(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	ErrorStatusAction(w, r, http.StatusOK)
}

func (d *Api) selfSignedKeyFilename() string {
	return filepath.Join(d.config.ConfigDir, "key.pem")
}

func (d *Api) selfSignedCertFilename() string {
	return filepath.Join(d.config.ConfigDir, "cert.pem")
}

func ErrorNotFoundAction(w http.ResponseWriter, r *http.Request) {
	ErrorStatusAction(w, r, http.StatusNotFound)
}

func ErrorMethodNotAllowedAction(w http.ResponseWriter, r *http.Request) {
	ErrorStatusAction(w, r, http.StatusMethodNotAllowed)
}

func ErrorStatusAction(w http.ResponseWriter, r *http.Request, status int) {
	GlobalErrorAction(w, "", status)
}

func GlobalErrorAction(w http.ResponseWriter, message string, status int) {
	apimodel.ErrorMessage{ErrStatusCode: status, ErrMessage: message}.SendError(w)
}
