package catalog

const (
	qualityPrefix = "Masterpiece, best quality, 8k resolution, "
	qualitySuffix = ", highly detailed, artistic composition, professional art."
)

var stylePrompts = map[string]string{
	"watercolor":        "Soft watercolor painting of a cute pet, wet-on-wet technique, rough white paper texture, delicate brushstrokes, pastel colors, dreamy atmosphere, soft pigment blending, artistic watercolor.",
	"oil_painting":      "Classic oil painting of a pet, thick impasto brushstrokes, textured canvas, vibrant colors, artistic flair, Van Gogh inspired style, expressive strokes, traditional art.",
	"sketch":            "Charcoal and graphite pencil sketch of a cute pet on paper, rough paper grain, monochrome, hand-drawn lines, cross-hatching shading, artistic pencil drawing, detailed fur texture.",
	"digital_painting":  "Premium digital illustration of a pet, concept art style, smooth shading, dramatic lighting, clean lines, ArtStation quality, highly polished, fantasy art.",
	"pixel_art":         "Retro 16-bit pixel art of a cute pet, visible distinct pixels, limited color palette, game sprite style, arcade aesthetic, sharp edges, no anti-aliasing, blocky, nostalgic.",
	"webtoon":           "Korean webtoon manhwa style pet character, cel-shaded, bold outlines, vibrant colors, 2D illustration, anime aesthetic, flat coloring, dramatic composition, comic book style, safe for work.",
	"pop_art":           "Pop Art style pet portrait, Andy Warhol inspired, halftone dots, bold black outlines, vibrant primary colors, high contrast, poster art, flat look, screen print texture, artistic rendering.",
	"cyberpunk":         "Futuristic Cyberpunk pet, neon lights, glowing effects, sci-fi atmosphere, night city background, high contrast, chromatic aberration, synthwave, mechanical details, artistic sci-fi concept.",
	"marble_statue":     "Classical white marble bust sculpture of a pet, carved stone texture, museum lighting, static pose, roman art style, 3d render of an animal statue, monochromatic white, subsurface scattering.",
	"three_d_animation": "3D Disney Pixar style pet character, cute stylized 3d render, big expressive eyes, fluffy fur texture, octane render, soft studio lighting, volumetric 3d, cartoon aesthetic, unreal engine 5, family friendly.",
	"emotional_anime":   "Studio Ghibli style cute pet illustration, soft anime art of an animal, watercolor background, warm sunlight, sentimental, 2D animation frame, family friendly, hand drawn.",
	"renaissance":       "Renaissance royal portrait of a pet wearing vintage noble clothes, oil on wood, regal atmosphere, intricate clothing details, museum masterpiece, Leonardo da Vinci style, classic art.",
}

// EnhancedPrompt wraps the style description in the shared quality prefix
// and suffix. Unknown ids fall back to the id itself so custom styles still
// produce a usable prompt.
func EnhancedPrompt(styleID string) string {
	desc, ok := stylePrompts[styleID]
	if !ok {
		desc = styleID
	}
	return qualityPrefix + desc + qualitySuffix
}
