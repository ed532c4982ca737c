package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopatterns/internal/builder"
)

func TestBuild_ChainedSteps(t *testing.T) {
	car, err := builder.New("Custom").Engine("petrol").Seats(4).GPS().Build()
	require.NoError(t, err)
	assert.Equal(t, "Custom", car.Model)
	assert.Equal(t, 4, car.Seats)
	assert.True(t, car.GPS)
	assert.False(t, car.Sunroof)
}

func TestBuild_MissingParts(t *testing.T) {
	_, err := builder.New("NoEngine").Seats(4).Build()
	require.Error(t, err)

	_, err = builder.New("NoSeats").Engine("petrol").Build()
	require.Error(t, err)
}

func TestDirector_Presets(t *testing.T) {
	var d builder.Director

	city, err := d.CityCar()
	require.NoError(t, err)
	assert.Equal(t, "Pixel (electric, 2 seats)", city.String())

	tourer, err := d.Tourer()
	require.NoError(t, err)
	assert.Equal(t, "Horizon (hybrid, 5 seats +sunroof +gps)", tourer.String())
}
