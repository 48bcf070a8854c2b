package srv

import (
	"errors"

	"github.com/jypelle/simplicity/apimodel"
	"github.com/jypelle/simplicity/internal/face"
	"github.com/jypelle/simplicity/internal/srv/event"
	"github.com/sirupsen/logrus"
)

func (s *ServerApp) eventLoop() {
	for loop := true; loop; {
		select {
		case ev := <-s.internalEventChannel:
			switch ev.Data.(type) {
			case event.InternalEventDisplaySwitchData:
				logrus.Debugf("Switch display on/off")
				logrus.Infof("Display on: %t", s.screen.Switch())
			}
		case ev := <-s.clockDevice.EventChannel():
			switch data := ev.Data.(type) {
			case event.TickerEventTickData:
				s.onTick(data)
			}
		case ev := <-s.batteryDevice.EventChannel():
			logrus.Debugf("Receive battery event: %d%%, charging: %t", ev.State.Percent, ev.State.IsCharging)
			s.onBatteryChanged(ev.State)
		case ev := <-s.bluetoothDevice.EventChannel():
			logrus.Debugf("Receive bluetooth event: %t", ev.State.Connected)
			s.onBluetoothChanged(ev.State)
		case ev := <-s.apiDevice.EventChannel():
			s.onApiEvent(ev)
		case <-s.eventLoopAskDone:
			loop = false
		}
	}
	s.eventLoopDone <- true
}

func (s *ServerApp) onTick(data event.TickerEventTickData) {
	err := s.engine.OnSecondTick(data.Sample)

	// Minutes may have been skipped by a wall clock change
	if data.Resync && data.Sample.Second != 0 {
		logrus.Infof("Resync face at %02d:%02d:%02d", data.Sample.Hour, data.Sample.Minute, data.Sample.Second)
		err = errors.Join(err, s.engine.OnMinuteBoundary(data.Sample))
	}

	s.logFaceError(err)
	s.refreshDisplay()
}

func (s *ServerApp) onBatteryChanged(state face.BatteryState) {
	s.SetLastBattery(state)
	s.logFaceError(s.engine.OnBatteryChanged(state))
	s.refreshDisplay()
}

func (s *ServerApp) onBluetoothChanged(state face.BluetoothState) {
	s.SetLastBluetooth(state)
	s.logFaceError(s.engine.OnBluetoothChanged(state))
	s.refreshDisplay()
}

func (s *ServerApp) onApiEvent(ev event.ApiEvent) {
	switch data := ev.Data.(type) {
	case event.ApiEventFaceData:
		faceModel := s.faceModel()
		logrus.Debugf("Api face request, shown slots: %v", faceModel.Shown())
		data.Face <- faceModel
		ev.Result <- nil
	case event.ApiEventFaceImageData:
		s.refreshDisplay()
		data.Image <- s.lastFrame
		ev.Result <- nil
	case event.ApiEventBatteryData:
		s.onBatteryChanged(s.batteryDevice.Inject(data.State))
		ev.Result <- nil
	case event.ApiEventBluetoothData:
		s.onBluetoothChanged(s.bluetoothDevice.Inject(data.State))
		ev.Result <- nil
	default:
		ev.Result <- errors.New("unknown api request")
	}
}

// faceModel describes what the slots currently show
func (s *ServerApp) faceModel() apimodel.Face {
	displayConfig := s.engine.Config()
	stats := s.engine.Stats()

	faceModel := apimodel.Face{
		Use24Hour:        displayConfig.Use24Hour,
		ShowLeadingZeros: displayConfig.ShowLeadingZeros,
		DisplayOn:        s.screen.IsOn(),
		LiveImages:       int64(s.canvas.LiveImages()),
		SecondTicks:      stats.SecondTicks,
		MinuteRefreshes:  stats.MinuteRefreshes,
		AcquireFailures:  stats.AcquireFailures,
	}
	for i, slotState := range s.engine.State() {
		slot := apimodel.Slot{
			Name:    face.SlotId(i).String(),
			X:       slotState.Position.X,
			Y:       slotState.Position.Y,
			Visible: slotState.Visible,
		}
		if slotState.ImageId != face.NO_IMAGE {
			slot.Image = slotState.ImageId.String()
		}
		faceModel.Slots = append(faceModel.Slots, slot)
	}
	return faceModel
}

// logFaceError reports slot failures, the face keeps running with the
// previous images
func (s *ServerApp) logFaceError(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, face.ErrResourceUnavailable) {
		logrus.Warnf("Face partially refreshed: %v", err)
	} else {
		logrus.Errorf("Face refresh failed: %v", err)
	}
}
