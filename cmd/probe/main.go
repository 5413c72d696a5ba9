package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/qqlu66/ads1x15/pkg/ads1x15"
	"github.com/qqlu66/ads1x15/pkg/ft232h"
)

var log zerolog.Logger

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	log = zerolog.New(cw).With().Timestamp().Logger()
}

type options struct {
	ftIndex   int
	addr      uint
	chip      string
	gain      uint
	rate      uint
	channel   uint
	negative  int
	count     int
	interval  time.Duration
	alertPin  int
	threshold int
}

func flags() options {
	var o options
	flag.IntVar(&o.ftIndex, "FT232H", 0, "FT232H Index")
	flag.UintVar(&o.addr, "addr", ads1x15.AddrGND, "7-bit bus address (0x48-0x4B)")
	flag.StringVar(&o.chip, "chip", "ADS1115", "chip variant (ADS1015 or ADS1115)")
	flag.UintVar(&o.gain, "gain", uint(ads1x15.Gain2V), "gain index (0-5)")
	flag.UintVar(&o.rate, "rate", 4, "data rate index (0-7)")
	flag.UintVar(&o.channel, "ch", 0, "positive input channel (0-3)")
	flag.IntVar(&o.negative, "neg", -1, "negative input channel for differential mode (-1 = single-ended)")
	flag.IntVar(&o.count, "n", 10, "number of samples")
	flag.DurationVar(&o.interval, "interval", 250*time.Millisecond, "delay between samples")
	flag.IntVar(&o.alertPin, "alert", -1, "ALERT/RDY pin on the bridge (GPIO, -1 = disabled)")
	flag.IntVar(&o.threshold, "threshold", -1, "comparator high threshold code (requires -alert)")
	flag.Parse()
	return o
}

func main() {
	o := flags()

	bridge, err := ft232h.ConnectFT232h(ft232h.ByIndex(o.ftIndex))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to FT232H")
	}

	log.Info().Any("info", bridge.Info()).
		Msgf("connected to FT232H: %s", bridge)

	bus, err := ads1x15.NewI2CBus(bridge, byte(o.addr))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to bring up I2C master")
	}

	cfg := ads1x15.DefaultConfig()
	cfg.Addr = byte(o.addr)
	cfg.Gain = ads1x15.Gain(o.gain)
	if o.chip == "ADS1015" {
		cfg.Variant = ads1x15.ADS1015
	}

	log.Debug().Any("config", cfg).Msg("initializing ADS1x15")
	adc, err := ads1x15.NewADS1x15(bus, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize ADS1x15")
	}

	mux := muxFromFlags(o)
	rate := ads1x15.Rate(o.rate)

	if sps, err := adc.Variant().SampleRate(rate); err == nil {
		log.Info().Uint16("sps", sps).Stringer("mux", mux).
			Stringer("range", adc.Gain()).Msgf("sampling %s", adc.Variant())
	}

	if o.alertPin >= 0 {
		watchAlert(adc, bridge, rate, mux, o)
	} else {
		sample(adc, rate, mux, o)
	}

	if err = adc.Close(); err != nil {
		log.Fatal().Err(err).Msg("failed to close ADS1x15")
	}

	log.Info().Msg("closed ADS1x15")
}

func muxFromFlags(o options) ads1x15.Mux {
	var (
		mux ads1x15.Mux
		err error
	)
	if o.negative >= 0 {
		mux, err = ads1x15.Differential(ads1x15.Channel(o.channel), ads1x15.Channel(o.negative))
	} else {
		mux, err = ads1x15.SingleEnded(ads1x15.Channel(o.channel))
	}
	if err != nil {
		log.Fatal().Err(err).Msg("bad channel selection")
	}
	return mux
}

func sample(adc *ads1x15.ADS1x15, rate ads1x15.Rate, mux ads1x15.Mux, o options) {
	for i := 0; i < o.count; i++ {
		code, err := adc.ReadBlocking(rate, mux)
		if err != nil {
			log.Fatal().Err(err).Msg("blocking read failed")
		}
		log.Info().Int16("code", code).Float64("volts", adc.Volts(code)).Msg("sample")
		time.Sleep(o.interval)
	}
}

func watchAlert(adc *ads1x15.ADS1x15, bridge *ft232h.FT232H, rate ads1x15.Rate, mux ads1x15.Mux, o options) {
	if err := bridge.SetAlertPin(uint(o.alertPin)); err != nil {
		log.Fatal().Err(err).Msg("failed to configure ALERT pin")
	}

	var err error
	if o.threshold >= 0 {
		err = adc.StartAlert(rate, mux, int16(o.threshold))
	} else {
		err = adc.StartContinuous(rate, mux)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start continuous conversion")
	}

	for i := 0; i < o.count; i++ {
		if err = bridge.WaitAlert(); err != nil {
			log.Fatal().Err(err).Msg("failed waiting on ALERT pin")
		}
		code, err := adc.ReadCurrent()
		if err != nil {
			log.Fatal().Err(err).Msg("conversion read failed")
		}
		log.Info().Int16("code", code).Float64("volts", adc.Volts(code)).Msg("alert")
	}
}
