/*
go-kpcodec provides encoding and decoding between 2D keypoint coordinates
(such as facial landmarks) and the dense heatmap representation used to
train and evaluate keypoint localisation models.

The codec subpackage contains the heatmap plus sub-pixel offset codec
itself, the heatmap subpackage holds the reusable Gaussian heatmap and
peak search primitives, and the render and eval subpackages provide
visualisation and accuracy measurement of codec output.

See example code and usage in the example subdirectory.
*/
package kpcodec
