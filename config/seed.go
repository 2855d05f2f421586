package config

import "github.com/akwaflow/website/models"

// samplePosts returns the fixed starter content inserted when the posts table
// is empty at startup.
func samplePosts() []models.Post {
	return []models.Post{
		{
			Title:     "Flow Meter Calibration: Best Practices for Accurate Measurements",
			Content:   "<p>Flow meter calibration is a critical process in the oil and gas industry, ensuring accurate custody transfer measurements that are essential for revenue assurance and regulatory compliance.</p><p>At AKWAFLOW, we specialize in providing comprehensive calibration services that meet the highest industry standards. Our team of certified technicians uses state-of-the-art equipment and follows internationally recognized procedures to ensure your flow meters operate with maximum precision.</p><h2>Key Benefits</h2><ul><li>Improved measurement accuracy and reliability</li><li>Compliance with NNPC and international standards</li><li>Enhanced revenue assurance through precise custody transfer</li><li>Reduced operational risks and measurement uncertainties</li><li>Comprehensive documentation and certification</li></ul><p>Contact us today to learn more about our flow meter calibration services and how we can help optimize your measurement systems for maximum accuracy and compliance.</p>",
			Category:  "Engineering",
			Image:     "flows.jpg",
			Published: true,
		},
		{
			Title:     "Pipeline Integrity Management: Ensuring Safe Operations",
			Content:   "<p>Pipeline integrity management is crucial for maintaining safe and efficient operations in the oil and gas industry. Our comprehensive approach combines advanced inspection techniques with proactive maintenance strategies.</p><p>We utilize various Non-Destructive Testing (NDT) methods including ultrasonic testing, radiographic testing, magnetic particle inspection, and dye penetrant testing to assess pipeline condition and identify potential issues before they become critical.</p><h2>Our Services Include</h2><ul><li>Comprehensive pipeline inspections</li><li>Risk assessment and management</li><li>Corrosion monitoring and control</li><li>Emergency response planning</li><li>Regulatory compliance support</li></ul><p>Trust AKWAFLOW for reliable pipeline integrity solutions that protect your assets and ensure operational continuity.</p>",
			Category:  "Safety",
			Image:     "ndt.jpg",
			Published: true,
		},
		{
			Title:     "Advanced Corrosion Control Solutions for Critical Infrastructure",
			Content:   "<p>Corrosion is one of the most significant challenges facing the oil and gas industry, causing billions of dollars in damage annually. Our advanced composite wrap technology provides robust and long-lasting protection for critical infrastructure.</p><p>AKWAFLOW's corrosion control solutions combine innovative materials with proven application techniques to deliver superior protection against environmental and operational stresses.</p><h2>Technology Advantages</h2><ul><li>High-strength composite materials</li><li>Rapid installation with minimal downtime</li><li>Long-term durability and reliability</li><li>Cost-effective maintenance solutions</li><li>Environmental compliance</li></ul><p>Protect your infrastructure investment with our proven corrosion control technologies.</p>",
			Category:  "Technical",
			Image:     "corrotion.jpeg",
			Published: true,
		},
	}
}
